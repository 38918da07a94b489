package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunParallelTasksKeepsOrder(t *testing.T) {
	boom := errors.New("boom")
	tasks := []ParallelTask{
		func() (interface{}, error) { return int64(42), nil },
		func() (interface{}, error) { return nil, boom },
		func() (interface{}, error) { return "ok", nil },
	}

	results, errs := RunParallelTasks(tasks)

	assert.Equal(t, int64(42), results[0])
	assert.Equal(t, boom, errs[1])
	assert.Equal(t, "ok", results[2])
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[2])
}
