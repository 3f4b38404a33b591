package usecase

import (
	"context"
	"log"
)

// LeadGateUseCase tracks which visitors already went through the gate
// popup so returning browsers are not asked again. The flag lives in the
// injected KV store, not in process memory.
type LeadGateUseCase struct {
	Store KVStore
}

func NewLeadGateUseCase(store KVStore) *LeadGateUseCase {
	return &LeadGateUseCase{Store: store}
}

func (uc *LeadGateUseCase) HasSubmitted(ctx context.Context, visitorID string) bool {
	value, ok := uc.Store.Get(ctx, gateKey(visitorID))
	return ok && value == "true"
}

// MarkSubmitted is best-effort: a store outage just means the visitor sees
// the gate once more next visit.
func (uc *LeadGateUseCase) MarkSubmitted(ctx context.Context, visitorID string) {
	if err := uc.Store.Set(ctx, gateKey(visitorID), "true"); err != nil {
		log.Printf("⚠️ [GATE] flag not stored for visitor %s: %s", visitorID, err)
	}
}

func gateKey(visitorID string) string {
	return "gate:submitted:" + visitorID
}
