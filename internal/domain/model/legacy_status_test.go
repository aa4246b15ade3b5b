package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyItemStatusID(t *testing.T) {
	assert.Equal(t, ItemStatusInTransit, LegacyItemStatusID("shipped"))
	assert.Equal(t, ItemStatusPending, LegacyItemStatusID("ordered"))
	assert.Equal(t, ItemStatusDelivered, LegacyItemStatusID("Delivered"))
	assert.Equal(t, ItemStatusCancelled, LegacyItemStatusID(" canceled "))

	// 未知の文字列はPendingへ（失敗させない）
	assert.Equal(t, ItemStatusPending, LegacyItemStatusID("backordered"))
	assert.Equal(t, ItemStatusPending, LegacyItemStatusID(""))
}

func TestLegacyOrderStatusID(t *testing.T) {
	assert.Equal(t, OrderStatusInTransit, LegacyOrderStatusID("shipped"))
	assert.Equal(t, OrderStatusPreparing, LegacyOrderStatusID("processing"))
	assert.Equal(t, OrderStatusPending, LegacyOrderStatusID("backordered"))
}
