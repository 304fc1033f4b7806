package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/onboarding"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingSender = errors.New("sender phone number is required")

	errDuplicateDelivery = errors.New("duplicate delivery")
)

// InboundMessage is one Twilio WhatsApp webhook delivery.
type InboundMessage struct {
	From             string
	To               string
	Body             string
	MessageSID       string
	NumMedia         int
	MediaURL         string
	MediaContentType string
}

// HasMedia reports whether the message carries an attachment.
func (m *InboundMessage) HasMedia() bool {
	return m.MediaURL != ""
}

// WebhookResult is what the webhook answers with.
type WebhookResult struct {
	Reply string
	// Duplicate is set for a redelivered MessageSid; nothing is sent back.
	Duplicate      bool
	ConversationID uuid.UUID
	State          onboarding.State
	BusinessID     *uuid.UUID
}

type WebhookOptions struct {
	// Dedup drops redeliveries of a provider-supplied MessageSid.
	Dedup bool
	// DefaultTo is logged as the recipient when the webhook omits To.
	DefaultTo string
}

// WebhookService processes one inbound message as a single unit of work:
// conversation lookup or creation, inbound log, state transition, business
// provisioning and the state update commit or roll back together.
type WebhookService struct {
	uow         repositories.UnitOfWork
	provisioner BusinessProvisioner
	messageLog  *MessageLogService
	opts        WebhookOptions
}

func NewWebhookService(
	uow repositories.UnitOfWork,
	provisioner BusinessProvisioner,
	messageLog *MessageLogService,
	opts WebhookOptions,
) *WebhookService {
	return &WebhookService{
		uow:         uow,
		provisioner: provisioner,
		messageLog:  messageLog,
		opts:        opts,
	}
}

// HandleInbound runs the onboarding flow for msg. On failure every change is
// rolled back and the result carries the apology reply alongside the error.
func (s *WebhookService) HandleInbound(ctx context.Context, msg InboundMessage) (*WebhookResult, error) {
	phone, standardized := utils.NormalizeSender(msg.From)
	if phone == "" {
		return nil, ErrMissingSender
	}
	if !standardized {
		log.Warn().Str("from", msg.From).Msg("sender is not an E.164 number, using raw value")
	}

	sidProvided := msg.MessageSID != ""
	if !sidProvided {
		msg.MessageSID = GenerateMessageSID()
	}
	if msg.To == "" {
		msg.To = s.opts.DefaultTo
	}

	var result *WebhookResult
	err := s.runTransaction(ctx, func(tx *repositories.Repos) error {
		if s.opts.Dedup && sidProvided {
			fresh, err := tx.Dedup.RecordInbound(ctx, msg.MessageSID, phone)
			if err != nil {
				return err
			}
			if !fresh {
				return errDuplicateDelivery
			}
		}

		res, err := s.process(ctx, tx, phone, &msg)
		if err != nil {
			return err
		}

		if s.opts.Dedup && sidProvided {
			if err := tx.Dedup.MarkProcessed(ctx, msg.MessageSID); err != nil {
				return err
			}
		}
		result = res
		return nil
	})

	if errors.Is(err, errDuplicateDelivery) {
		log.Info().Str("phone", phone).Str("message_sid", msg.MessageSID).Msg("Duplicate webhook delivery ignored")
		return &WebhookResult{Duplicate: true}, nil
	}
	if err != nil {
		utils.LogError("Error processing WhatsApp message, rolled back", err, map[string]interface{}{
			"phone":       phone,
			"message_sid": msg.MessageSID,
		})
		s.messageLog.LogOutbound(ctx, s.uow.Repos().Messages, nil, msg.To, msg.From, onboarding.ReplyApology)
		return &WebhookResult{Reply: onboarding.ReplyApology}, err
	}

	// after commit: a failure here must not undo the state change
	s.messageLog.LogOutbound(ctx, s.uow.Repos().Messages, &result.ConversationID, msg.To, msg.From, result.Reply)

	log.Info().
		Str("phone", phone).
		Str("conversation_id", result.ConversationID.String()).
		Str("state", result.State.String()).
		Msg("WhatsApp message processed")
	return result, nil
}

func (s *WebhookService) process(ctx context.Context, tx *repositories.Repos, phone string, msg *InboundMessage) (*WebhookResult, error) {
	conversation, err := tx.Conversations.LockByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		conversation, err = tx.Conversations.Create(ctx, phone)
		if err != nil {
			return nil, err
		}
	}

	s.messageLog.LogInbound(ctx, tx.Messages, &conversation.ID, msg)

	existing, err := s.resolveBusiness(ctx, tx.Businesses, conversation, phone)
	if err != nil {
		return nil, err
	}

	input := onboarding.Input{
		State:     onboarding.State(conversation.CurrentState),
		Body:      msg.Body,
		HasMedia:  msg.HasMedia(),
		MediaType: msg.MediaContentType,
	}
	var bindID *uuid.UUID
	if existing != nil {
		input.ExistingBusinessName = existing.BusinessName
		if !conversation.HasBusiness() {
			bindID = &existing.ID
		}
	}

	decision := onboarding.Transition(input)

	if decision.CreateBusiness != nil {
		business, err := s.provisioner.Provision(ctx, tx.Businesses, decision.CreateBusiness.Name, phone)
		if err != nil {
			return nil, fmt.Errorf("provision business: %w", err)
		}
		bindID = &business.ID
		log.Info().
			Str("business_id", business.ID.String()).
			Str("business_name", business.BusinessName).
			Str("phone", phone).
			Msg("Business provisioned from WhatsApp onboarding")
	}

	if err := tx.Conversations.UpdateState(ctx, conversation.ID, string(decision.Next), bindID); err != nil {
		return nil, err
	}

	businessID := conversation.BusinessID
	if businessID == nil {
		businessID = bindID
	}
	return &WebhookResult{
		Reply:          decision.Reply,
		ConversationID: conversation.ID,
		State:          decision.Next,
		BusinessID:     businessID,
	}, nil
}

// resolveBusiness finds the business the conversation is bound to, or one
// already registered for the phone elsewhere.
func (s *WebhookService) resolveBusiness(ctx context.Context, businesses repositories.BusinessRepo, conversation *models.Conversation, phone string) (*models.Business, error) {
	if conversation.HasBusiness() {
		business, err := businesses.GetByID(ctx, *conversation.BusinessID)
		if err != nil || business != nil {
			return business, err
		}
	}
	return businesses.GetByPhone(ctx, phone)
}

func (s *WebhookService) runTransaction(ctx context.Context, fn func(tx *repositories.Repos) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing webhook: %v", r)
		}
	}()
	return s.uow.Transaction(ctx, fn)
}
