package services

import (
	"context"
	"time"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/rs/zerolog/log"
)

// DedupPruner removes idempotency records older than the retention window.
type DedupPruner struct {
	dedup     repositories.DedupRepo
	retention time.Duration
	now       func() time.Time
}

func NewDedupPruner(dedup repositories.DedupRepo, retention time.Duration) *DedupPruner {
	return &DedupPruner{dedup: dedup, retention: retention, now: time.Now}
}

func (p *DedupPruner) Prune(ctx context.Context) error {
	cutoff := p.now().UTC().Add(-p.retention)
	deleted, err := p.dedup.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Pruned inbound dedup records")
	return nil
}
