package deriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus_NoSnapshot(t *testing.T) {
	assert.Equal(t, StatusOffline, ClassifyStatus(nil))
}

func TestClassifyStatus_DispensingOutranksError(t *testing.T) {
	s := snapshot(100, 6, 40, 50)
	s.IsDispensing = true

	assert.Equal(t, StatusDispensing, ClassifyStatus(s))
}

func TestClassifyStatus_CoolingOutranksError(t *testing.T) {
	s := snapshot(100, 6, 40, 50)
	s.FanStatus = true

	assert.Equal(t, StatusCooling, ClassifyStatus(s))
}

func TestClassifyStatus_Error(t *testing.T) {
	s := snapshot(100, 6, 25, 50)
	s.Bottles[1].Temperature = 36

	assert.Equal(t, StatusError, ClassifyStatus(s))
}

func TestClassifyStatus_Idle(t *testing.T) {
	assert.Equal(t, StatusIdle, ClassifyStatus(snapshot(100, 6, 25, 50)))
}
