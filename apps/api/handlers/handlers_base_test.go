package handlers

import (
	"testing"

	"github.com/fiscalia/fiscalia-api/libs/go/logger"
	"github.com/fiscalia/fiscalia-api/libs/go/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

// newTestCommon builds a CommonServices backed by a mock querier. The
// controller is cleaned up by the test framework.
func newTestCommon(t *testing.T) (*mocks.MockQuerier, *CommonServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	return queries, NewCommonServices(queries, zap.NewNop())
}
