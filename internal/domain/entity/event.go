package entity

// EventType tags a domain event handed to the notification fan-out engine.
type EventType string

const (
	EventOrderCreated      EventType = "OrderCreated"
	EventOrderEdited       EventType = "OrderEdited"
	EventOrderReady        EventType = "OrderReady"
	EventOrderCancelled    EventType = "OrderCancelled"
	EventOrderDelivered    EventType = "OrderDelivered"
	EventUserStatusChanged EventType = "UserStatusChanged"
	EventNewUserRegistered EventType = "NewUserRegistered"
)

// Priority returns the in-app notification priority for the event.
// Ready and Edited imply a sound/vibration alert on the client.
func (t EventType) Priority() NotificationPriority {
	if t == EventOrderReady || t == EventOrderEdited {
		return PriorityHigh
	}

	return PriorityNormal
}

// Event is a domain event plus its subject record. Exactly one of Order or
// Staff is set, depending on the event type.
type Event struct {
	Type  EventType
	Order *Order        // Subject for the Order* events.
	Staff *StaffProfile // Subject for UserStatusChanged and NewUserRegistered.
}
