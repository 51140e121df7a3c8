package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Next(t *testing.T) {
	tests := []struct {
		name      string
		status    OrderStatus
		orderType OrderType
		wantNext  OrderStatus
		wantOK    bool
	}{
		{name: "received advances to preparing", status: StatusReceived, orderType: OrderTypePickup, wantNext: StatusPreparing, wantOK: true},
		{name: "preparing advances to ready", status: StatusPreparing, orderType: OrderTypeDelivery, wantNext: StatusReady, wantOK: true},
		{name: "ready goes out for delivery on delivery orders", status: StatusReady, orderType: OrderTypeDelivery, wantNext: StatusOutForDelivery, wantOK: true},
		{name: "ready delivers directly on pickup orders", status: StatusReady, orderType: OrderTypePickup, wantNext: StatusDelivered, wantOK: true},
		{name: "out for delivery advances to delivered", status: StatusOutForDelivery, orderType: OrderTypeDelivery, wantNext: StatusDelivered, wantOK: true},
		{name: "delivered is terminal", status: StatusDelivered, orderType: OrderTypeDelivery, wantOK: false},
		{name: "cancelled is terminal", status: StatusCancelled, orderType: OrderTypePickup, wantOK: false},
		{name: "archived is terminal", status: StatusArchived, orderType: OrderTypePickup, wantOK: false},
		{name: "unknown status has no next", status: OrderStatus("Bogus"), orderType: OrderTypePickup, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.status.Next(tt.orderType)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNext, next)
			}
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	terminal := []OrderStatus{StatusDelivered, StatusCancelled, StatusArchived}
	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), "expected %s to be terminal", status)
	}

	active := []OrderStatus{StatusReceived, StatusPreparing, StatusReady, StatusOutForDelivery}
	for _, status := range active {
		assert.False(t, status.IsTerminal(), "expected %s to be active", status)
	}
}

func TestOrderType_Valid(t *testing.T) {
	assert.True(t, OrderTypeDelivery.Valid())
	assert.True(t, OrderTypePickup.Valid())
	assert.False(t, OrderType("drone").Valid())
}
