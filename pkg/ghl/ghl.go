package ghl

import "context"

// ─── Calendars ───────────────────────────────────────────────────────────

// CalendarEventsQuery filters GetCalendarEvents; at least one of UserID,
// GroupID or CalendarID should be set.
type CalendarEventsQuery struct {
	UserID     string
	GroupID    string
	CalendarID string
	StartDate  string
	EndDate    string
}

func (c *Client) GetCalendarEvents(ctx context.Context, q CalendarEventsQuery) Result {
	args := map[string]any{}
	putNonEmpty(args, "userId", q.UserID)
	putNonEmpty(args, "groupId", q.GroupID)
	putNonEmpty(args, "calendarId", q.CalendarID)
	putNonEmpty(args, "startDate", q.StartDate)
	putNonEmpty(args, "endDate", q.EndDate)
	return c.makeRequest(ctx, toolGetCalendarEvents, args)
}

func (c *Client) GetAppointmentNotes(ctx context.Context, appointmentID string) Result {
	return c.makeRequest(ctx, toolGetAppointmentNotes, map[string]any{
		"appointmentId": appointmentID,
	})
}

// ─── Contacts ────────────────────────────────────────────────────────────

func (c *Client) GetAllTasks(ctx context.Context, contactID string) Result {
	return c.makeRequest(ctx, toolGetAllTasks, map[string]any{"contactId": contactID})
}

func (c *Client) AddTags(ctx context.Context, contactID string, tags []string) Result {
	return c.makeRequest(ctx, toolAddTags, map[string]any{
		"contactId": contactID,
		"tags":      tags,
	})
}

func (c *Client) RemoveTags(ctx context.Context, contactID string, tags []string) Result {
	return c.makeRequest(ctx, toolRemoveTags, map[string]any{
		"contactId": contactID,
		"tags":      tags,
	})
}

func (c *Client) GetContact(ctx context.Context, contactID string) Result {
	return c.makeRequest(ctx, toolGetContact, map[string]any{"contactId": contactID})
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, contact Contact) Result {
	args := contactArgs(contact)
	args["contactId"] = contactID
	return c.makeRequest(ctx, toolUpdateContact, args)
}

// UpsertContact creates or updates a contact, matching by email or phone.
func (c *Client) UpsertContact(ctx context.Context, contact Contact) Result {
	return c.makeRequest(ctx, toolUpsertContact, contactArgs(contact))
}

func (c *Client) CreateContact(ctx context.Context, contact Contact) Result {
	return c.makeRequest(ctx, toolCreateContact, contactArgs(contact))
}

func (c *Client) GetContacts(ctx context.Context, query string, limit, offset int) Result {
	if limit <= 0 {
		limit = 100
	}
	args := map[string]any{"limit": limit, "offset": offset}
	putNonEmpty(args, "query", query)
	return c.makeRequest(ctx, toolGetContacts, args)
}

// ─── Conversations ───────────────────────────────────────────────────────

func (c *Client) SearchConversation(ctx context.Context, query, contactID string, limit, offset int) Result {
	if limit <= 0 {
		limit = 20
	}
	args := map[string]any{"limit": limit, "offset": offset}
	putNonEmpty(args, "query", query)
	putNonEmpty(args, "contactId", contactID)
	return c.makeRequest(ctx, toolSearchConversation, args)
}

func (c *Client) GetMessages(ctx context.Context, conversationID string, limit int, lastMessageID string) Result {
	if limit <= 0 {
		limit = 20
	}
	args := map[string]any{"conversationId": conversationID, "limit": limit}
	putNonEmpty(args, "lastMessageId", lastMessageID)
	return c.makeRequest(ctx, toolGetMessages, args)
}

func (c *Client) SendMessage(ctx context.Context, msg Message) Result {
	if msg.Type == "" {
		msg.Type = MessageTypeSMS
	}
	return c.makeRequest(ctx, toolSendMessage, map[string]any{
		"conversationId": msg.ConversationID,
		"message":        msg.Message,
		"type":           msg.Type,
	})
}

// ─── Locations ───────────────────────────────────────────────────────────

func (c *Client) GetLocation(ctx context.Context, locationID string) Result {
	if locationID == "" {
		locationID = c.locationID
	}
	return c.makeRequest(ctx, toolGetLocation, map[string]any{"locationId": locationID})
}

func (c *Client) GetCustomFields(ctx context.Context, locationID string) Result {
	if locationID == "" {
		locationID = c.locationID
	}
	return c.makeRequest(ctx, toolGetCustomFields, map[string]any{"locationId": locationID})
}

// ─── Opportunities ───────────────────────────────────────────────────────

// OpportunityQuery filters SearchOpportunity.
type OpportunityQuery struct {
	PipelineID string
	StageID    string
	ContactID  string
	Query      string
	Limit      int
	Offset     int
}

func (c *Client) SearchOpportunity(ctx context.Context, q OpportunityQuery) Result {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	args := map[string]any{"limit": limit, "offset": q.Offset}
	putNonEmpty(args, "pipelineId", q.PipelineID)
	putNonEmpty(args, "stageId", q.StageID)
	putNonEmpty(args, "contactId", q.ContactID)
	putNonEmpty(args, "query", q.Query)
	return c.makeRequest(ctx, toolSearchOpportunity, args)
}

func (c *Client) GetPipelines(ctx context.Context) Result {
	return c.makeRequest(ctx, toolGetPipelines, nil)
}

func (c *Client) GetOpportunity(ctx context.Context, opportunityID string) Result {
	return c.makeRequest(ctx, toolGetOpportunity, map[string]any{
		"opportunityId": opportunityID,
	})
}

func (c *Client) CreateOpportunity(ctx context.Context, opp Opportunity) Result {
	return c.makeRequest(ctx, toolCreateOpportunity, opportunityArgs(opp))
}

func (c *Client) UpdateOpportunity(ctx context.Context, opportunityID string, opp Opportunity) Result {
	args := opportunityArgs(opp)
	args["opportunityId"] = opportunityID
	return c.makeRequest(ctx, toolUpdateOpportunity, args)
}

// ─── Payments ────────────────────────────────────────────────────────────

func (c *Client) GetOrderByID(ctx context.Context, orderID string) Result {
	return c.makeRequest(ctx, toolGetOrderByID, map[string]any{"orderId": orderID})
}

func (c *Client) ListTransactions(ctx context.Context, limit, offset int, startDate, endDate string) Result {
	if limit <= 0 {
		limit = 20
	}
	args := map[string]any{"limit": limit, "offset": offset}
	putNonEmpty(args, "startDate", startDate)
	putNonEmpty(args, "endDate", endDate)
	return c.makeRequest(ctx, toolListTransactions, args)
}

// ─── helpers ─────────────────────────────────────────────────────────────

func contactArgs(contact Contact) map[string]any {
	args := map[string]any{}
	putNonEmpty(args, "firstName", contact.FirstName)
	putNonEmpty(args, "lastName", contact.LastName)
	putNonEmpty(args, "email", contact.Email)
	putNonEmpty(args, "phone", contact.Phone)
	if len(contact.Tags) > 0 {
		args["tags"] = contact.Tags
	}
	if len(contact.CustomFields) > 0 {
		args["customFields"] = contact.CustomFields
	}
	return args
}

func opportunityArgs(opp Opportunity) map[string]any {
	args := map[string]any{
		"name":       opp.Name,
		"contactId":  opp.ContactID,
		"pipelineId": opp.PipelineID,
		"stageId":    opp.StageID,
	}
	if opp.MonetaryValue > 0 {
		args["monetaryValue"] = opp.MonetaryValue
	}
	putNonEmpty(args, "status", opp.Status)
	return args
}

func putNonEmpty(args map[string]any, key, value string) {
	if value != "" {
		args[key] = value
	}
}
