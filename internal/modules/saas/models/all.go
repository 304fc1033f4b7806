package models

// All lists every table owned by this service, in creation order.
func All() []interface{} {
	return []interface{}{
		&Business{},
		&Conversation{},
		&WhatsAppMessage{},
		&InboundDedup{},
		&Product{},
		&FAQ{},
	}
}
