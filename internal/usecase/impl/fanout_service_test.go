package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"forno/config"
	"forno/internal/domain/entity"
	"forno/internal/domain/service"
	mockRepo "forno/internal/mocks/repository"
	mockSvc "forno/internal/mocks/service"
	"forno/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFanout(t *testing.T) (
	usecase.EventFanout,
	*mockRepo.MockStaffRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockPushSender,
) {
	staffRepo := mockRepo.NewMockStaffRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.NotificationsConfig{BaseURL: "https://forno.example", Icon: "/icons/pizza.png"}

	fanout := NewEventFanout(logger, staffRepo, notificationRepo, pushSender, cfg)

	return fanout, staffRepo, notificationRepo, pushSender
}

func TestFanout_OrderCreated_NotifiesApprovedStaff(t *testing.T) {
	fanout, staffRepo, notificationRepo, pushSender := createTestFanout(t)

	ctx := context.Background()
	order := &entity.Order{ID: "ord-1", OrderNumber: 12, CustomerName: "Mario"}
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved, FCMToken: "tok-a"}
	employee := &entity.StaffProfile{ID: "emp-1", Role: entity.RoleEmployee, Status: entity.StaffApproved}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator, entity.RoleEmployee}).
		Return([]*entity.StaffProfile{admin, employee}, nil)

	var mu sync.Mutex
	var created []*entity.Notification
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, n *entity.Notification) {
		mu.Lock()
		created = append(created, n)
		mu.Unlock()
	}).Return(nil).Times(2)

	// Only the admin registered a device token, so only one push goes out.
	pushSender.EXPECT().
		Send(ctx, "tok-a", "New order", "New order #12 from Mario", mock.Anything).
		Return(nil)

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderCreated, Order: order})

	require.Len(t, created, 2)
	recipients := map[string]bool{created[0].UserID: true, created[1].UserID: true}
	assert.True(t, recipients["admin-1"])
	assert.True(t, recipients["emp-1"])
	for _, n := range created {
		assert.Equal(t, "New order #12 from Mario", n.Message)
		assert.Equal(t, "https://forno.example/orders", n.RelatedURL)
		assert.Equal(t, entity.PriorityNormal, n.Priority)
		assert.False(t, n.IsRead)
	}
}

func TestFanout_OrderReady_IsHighPriority(t *testing.T) {
	fanout, staffRepo, notificationRepo, _ := createTestFanout(t)

	ctx := context.Background()
	employee := &entity.StaffProfile{ID: "emp-1", Role: entity.RoleEmployee, Status: entity.StaffApproved}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator, entity.RoleEmployee}).
		Return([]*entity.StaffProfile{employee}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, n *entity.Notification) {
		assert.Equal(t, entity.PriorityHigh, n.Priority)
		assert.Equal(t, "Order #3 is ready", n.Message)
	}).Return(nil)

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderReady, Order: &entity.Order{ID: "ord-3", OrderNumber: 3}})
}

func TestFanout_OrderDelivered_GoesToAdministratorsOnly(t *testing.T) {
	fanout, staffRepo, notificationRepo, _ := createTestFanout(t)

	ctx := context.Background()
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator}).
		Return([]*entity.StaffProfile{admin}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderDelivered, Order: &entity.Order{ID: "ord-4", OrderNumber: 4}})
}

func TestFanout_DeduplicatesRecipients(t *testing.T) {
	fanout, staffRepo, notificationRepo, _ := createTestFanout(t)

	ctx := context.Background()
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, mock.Anything).
		Return([]*entity.StaffProfile{admin, admin}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderCancelled, Order: &entity.Order{ID: "ord-5", OrderNumber: 5}})
}

func TestFanout_UserStatusChanged_NotifiesSubjectOnly(t *testing.T) {
	fanout, _, notificationRepo, pushSender := createTestFanout(t)

	ctx := context.Background()
	subject := &entity.StaffProfile{ID: "emp-9", Status: entity.StaffApproved, FCMToken: "tok-9"}

	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, n *entity.Notification) {
		assert.Equal(t, "emp-9", n.UserID)
		assert.Equal(t, "https://forno.example/profile", n.RelatedURL)
	}).Return(nil)
	pushSender.EXPECT().
		Send(ctx, "tok-9", "Account approved", mock.Anything, mock.Anything).
		Return(nil)

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventUserStatusChanged, Staff: subject})
}

func TestFanout_UserStatusChanged_PendingIsSilent(t *testing.T) {
	fanout, _, _, _ := createTestFanout(t)

	// No repository expectations: a move back to Pending notifies nobody.
	fanout.Dispatch(context.Background(), entity.Event{
		Type:  entity.EventUserStatusChanged,
		Staff: &entity.StaffProfile{ID: "emp-9", Status: entity.StaffPending},
	})
}

func TestFanout_NewUserRegistered_PointsAtUserAdmin(t *testing.T) {
	fanout, staffRepo, notificationRepo, _ := createTestFanout(t)

	ctx := context.Background()
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator}).
		Return([]*entity.StaffProfile{admin}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, n *entity.Notification) {
		assert.Equal(t, "Luigi registered and is awaiting approval", n.Message)
		assert.Equal(t, "https://forno.example/admin/users", n.RelatedURL)
	}).Return(nil)

	fanout.Dispatch(ctx, entity.Event{
		Type:  entity.EventNewUserRegistered,
		Staff: &entity.StaffProfile{ID: "emp-2", Name: "Luigi", Status: entity.StaffPending},
	})
}

func TestFanout_InvalidDeviceTokenIsCleared(t *testing.T) {
	fanout, staffRepo, notificationRepo, pushSender := createTestFanout(t)

	ctx := context.Background()
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved, FCMToken: "dead-token"}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator}).
		Return([]*entity.StaffProfile{admin}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	pushSender.EXPECT().
		Send(ctx, "dead-token", mock.Anything, mock.Anything, mock.Anything).
		Return(service.ErrInvalidDeviceToken)
	staffRepo.EXPECT().ClearFCMToken(ctx, "admin-1").Return(nil)

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderDelivered, Order: &entity.Order{ID: "ord-6", OrderNumber: 6}})
}

func TestFanout_FailuresNeverPropagate(t *testing.T) {
	fanout, staffRepo, notificationRepo, pushSender := createTestFanout(t)

	ctx := context.Background()
	admin := &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved, FCMToken: "tok-a"}

	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, []entity.StaffRole{entity.RoleAdministrator}).
		Return([]*entity.StaffProfile{admin}, nil)
	// A failed write must not stop the push, and neither failure escapes.
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("store down"))
	pushSender.EXPECT().
		Send(ctx, "tok-a", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm down"))

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderDelivered, Order: &entity.Order{ID: "ord-7", OrderNumber: 7}})
}

func TestFanout_AudienceLookupFailureIsSwallowed(t *testing.T) {
	fanout, staffRepo, _, _ := createTestFanout(t)

	ctx := context.Background()
	staffRepo.EXPECT().
		FindApprovedByRoles(ctx, mock.Anything).
		Return(nil, errors.New("store down"))

	fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderCreated, Order: &entity.Order{ID: "ord-8", OrderNumber: 8}})
}
