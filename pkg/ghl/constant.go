package ghl

import "time"

const (
	DefaultBaseURL = "https://services.leadconnectorhq.com/mcp/"

	// MessageTypeSMS is the default channel for confirmation messages.
	MessageTypeSMS = "SMS"

	requestTimeout = 30 * time.Second
	userAgent      = "jewelry-concierge/1.0"
)

// MCP tool names, 1:1 with the remote catalog.
const (
	toolGetCalendarEvents   = "calendars_get-calendar-events"
	toolGetAppointmentNotes = "calendars_get-appointment-notes"
	toolListCalendars       = "list_calendars"

	toolGetAllTasks   = "contacts_get-all-tasks"
	toolAddTags       = "contacts_add-tags"
	toolRemoveTags    = "contacts_remove-tags"
	toolGetContact    = "contacts_get-contact"
	toolUpdateContact = "contacts_update-contact"
	toolUpsertContact = "contacts_upsert-contact"
	toolCreateContact = "contacts_create-contact"
	toolGetContacts   = "contacts_get-contacts"

	toolSearchConversation = "conversations_search-conversation"
	toolGetMessages        = "conversations_get-messages"
	toolSendMessage        = "conversations_send-a-new-message"

	toolGetLocation     = "locations_get-location"
	toolGetCustomFields = "locations_get-custom-fields"

	toolSearchOpportunity = "opportunities_search-opportunity"
	toolGetPipelines      = "opportunities_get-pipelines"
	toolGetOpportunity    = "opportunities_get-opportunity"
	toolCreateOpportunity = "opportunities_create-opportunity"
	toolUpdateOpportunity = "opportunities_update-opportunity"

	toolGetOrderByID     = "payments_get-order-by-id"
	toolListTransactions = "payments_list-transactions"
)
