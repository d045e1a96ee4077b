package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/container"
)

func TestPriorityQueueHeapOperation(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	assert.Equal(t, 0, q.Len())

	q.HeapPush("c", 3)
	q.HeapPush("a", 1)
	q.HeapPush("b", 2)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.First())

	v, p := q.HeapPop()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)
	v, p = q.HeapPop()
	assert.Equal(t, "b", v)
	assert.Equal(t, 2.0, p)
	v, p = q.HeapPop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 3.0, p)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueuePushHeapify(t *testing.T) {
	q := container.NewPriorityQueue[int]()

	// batch insert then rebuild
	q.Push(30, 30)
	q.Push(10, 10)
	q.Push(20, 20)
	q.Heapify()

	v, p := q.HeapPop()
	assert.Equal(t, 10, v)
	assert.Equal(t, 10.0, p)
	assert.Equal(t, 2, q.Len())
}

func TestPriorityQueueEach(t *testing.T) {
	q := container.NewPriorityQueue[int]()
	q.HeapPush(1, 5)
	q.HeapPush(2, 3)
	q.HeapPush(3, 4)

	values := make(map[int]float64)
	q.Each(func(value int, priority float64) {
		values[value] = priority
	})
	assert.Len(t, values, 3)
	assert.Equal(t, 3.0, values[2])
	// Each does not consume the queue
	assert.Equal(t, 3, q.Len())
}
