package tetris

import "math/rand"

type TetrominoGetter interface {
	Next() Kind
}

type RandomGetter struct {
	randomizer *rand.Rand
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{
		randomizer: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomGetter) Next() Kind {
	return Kind(r.randomizer.Intn(KindCount))
}

type QueueGetter struct {
	queue []Kind
}

func NewQueueGetter(kinds ...Kind) *QueueGetter {
	q := &QueueGetter{queue: make([]Kind, 0, len(kinds))}
	q.Push(kinds...)
	return q
}

func (q *QueueGetter) Next() Kind {
	k := q.queue[0]
	q.queue = q.queue[1:]
	return k
}

func (q *QueueGetter) Push(kinds ...Kind) {
	q.queue = append(q.queue, kinds...)
}

func (q *QueueGetter) Len() int {
	return len(q.queue)
}
