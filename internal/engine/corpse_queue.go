package engine

import (
	"container/heap"
	"ethereplodor-server/pkg/logger"
	"time"
)

// CorpseItem is one dead enemy waiting for removal.
type CorpseItem struct {
	EnemyID string    // Registry key
	Due     time.Time // Removal time. Earlier pops first.
	Index   int       // Heap index, kept for Fix/Remove
}

// CorpseQueue implements heap.Interface ordered by Due.
type CorpseQueue []*CorpseItem

func (pq CorpseQueue) Len() int { return len(pq) }

func (pq CorpseQueue) Less(i, j int) bool {
	return pq[i].Due.Before(pq[j].Due)
}

func (pq CorpseQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *CorpseQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*CorpseItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *CorpseQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}

// Update moves an item to a new due time.
func (pq *CorpseQueue) Update(item *CorpseItem, due time.Time) {
	item.Due = due
	heap.Fix(pq, item.Index)
}

// CorpseScheduler delays the registry removal of dead enemies.
type CorpseScheduler struct {
	queue   CorpseQueue
	itemMap map[string]*CorpseItem
}

func NewCorpseScheduler() *CorpseScheduler {
	return &CorpseScheduler{
		queue:   make(CorpseQueue, 0),
		itemMap: make(map[string]*CorpseItem),
	}
}

// Schedule queues id for removal at due. Rescheduling moves the existing entry.
func (cs *CorpseScheduler) Schedule(id string, due time.Time) {
	if item, ok := cs.itemMap[id]; ok {
		cs.queue.Update(item, due)
		return
	}

	item := &CorpseItem{EnemyID: id, Due: due}
	heap.Push(&cs.queue, item)
	cs.itemMap[id] = item

	logger.Component("corpses").WithField("enemy_id", id).Debug("Corpse scheduled")
}

// PopDue removes and returns every id due at or before now, earliest first.
func (cs *CorpseScheduler) PopDue(now time.Time) []string {
	var due []string
	for cs.queue.Len() > 0 && !cs.queue[0].Due.After(now) {
		item := heap.Pop(&cs.queue).(*CorpseItem)
		delete(cs.itemMap, item.EnemyID)
		due = append(due, item.EnemyID)
	}
	return due
}

// Cancel drops a pending removal.
func (cs *CorpseScheduler) Cancel(id string) bool {
	item, ok := cs.itemMap[id]
	if !ok {
		return false
	}
	heap.Remove(&cs.queue, item.Index)
	delete(cs.itemMap, id)
	return true
}

func (cs *CorpseScheduler) Len() int {
	return cs.queue.Len()
}

// DebugDump snapshots the queue. Heap order, not removal order.
func (cs *CorpseScheduler) DebugDump() []map[string]interface{} {
	result := make([]map[string]interface{}, 0)

	for _, item := range cs.queue {
		result = append(result, map[string]interface{}{
			"enemy_id": item.EnemyID,
			"due":      item.Due.UnixMilli(),
			"index":    item.Index,
		})
	}
	return result
}
