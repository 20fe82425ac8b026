package service

import (
	"context"
	"strconv"
	"strings"

	"visitorbadge/internal/repository"
	"visitorbadge/pkg/util"

	"github.com/rs/zerolog/log"
)

// LegacyMigrator looks up flat counters written by the previous badge backend
type LegacyMigrator struct {
	store  repository.LegacyStore
	hasher util.LegacyHasher
}

// NewLegacyMigrator creates a migrator; a nil hasher uses the default salt
func NewLegacyMigrator(store repository.LegacyStore, hasher util.LegacyHasher) *LegacyMigrator {
	if hasher == nil {
		hasher = util.NewMD5Hasher("")
	}
	return &LegacyMigrator{
		store:  store,
		hasher: hasher,
	}
}

// Lookup returns the legacy hit count for pageID.
// Lookup faults and malformed values are logged and reported as absent.
func (m *LegacyMigrator) Lookup(ctx context.Context, pageID string) (int64, bool) {
	if m == nil || m.store == nil {
		return 0, false
	}

	key := m.hasher.Hash(pageID)
	raw, ok, err := m.store.GetLegacyCount(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("page_id", pageID).Str("key", key).Msg("Failed to read legacy counter")
		return 0, false
	}
	if !ok {
		return 0, false
	}

	count, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || count < 0 {
		log.Warn().Str("page_id", pageID).Str("value", raw).Msg("Skipping malformed legacy counter")
		return 0, false
	}
	if count == 0 {
		return 0, false
	}
	return count, true
}
