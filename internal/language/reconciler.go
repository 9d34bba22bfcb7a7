// Package language keeps one normalized language value consistent across
// local persistence, in-memory state and (when authenticated) the server
// profile. The server wins once authenticated; local changes apply
// synchronously and are pushed best-effort.
package language

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Didine-06/travel-agency-sub000/internal/localstore"
)

// The closed set of supported languages.
const (
	English = "en"
	Russian = "ru"

	Default = English
)

// Normalize maps any value outside the supported set to the default.
func Normalize(v string) string {
	switch v {
	case English, Russian:
		return v
	}
	return Default
}

// LocaleSetter is the active UI locale. The reconciler keeps it in lockstep
// with the persisted value.
type LocaleSetter interface {
	Current() string
	Set(lang string)
}

// ProfileAPI is the slice of the API client the reconciler needs.
type ProfileAPI interface {
	GetLanguage(ctx context.Context) (string, error)
	UpdateLanguage(ctx context.Context, languageID string) error
}

// Reconciler owns the language preference.
type Reconciler struct {
	local   *localstore.Store
	profile ProfileAPI
	locale  LocaleSetter
	authed  func() bool
	log     *zap.Logger

	mu      sync.RWMutex
	current string
}

// New computes the initial value from local persistence, falling back to
// the active UI locale, and aligns the locale with it.
func New(local *localstore.Store, profile ProfileAPI, locale LocaleSetter, authed func() bool, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}

	initial := ""
	if v, ok := local.Get(localstore.KeyLanguageID); ok && v != "" {
		initial = Normalize(v)
	} else {
		initial = Normalize(locale.Current())
	}
	locale.Set(initial)

	return &Reconciler{
		local:   local,
		profile: profile,
		locale:  locale,
		authed:  authed,
		log:     log,
		current: initial,
	}
}

// Language returns the current value.
func (r *Reconciler) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SyncFromServer fetches the profile language and, if it differs, overwrites
// the in-memory value and the UI locale. Fetch failures keep the local
// value. Does nothing when not authenticated.
func (r *Reconciler) SyncFromServer(ctx context.Context) {
	if !r.authed() {
		return
	}
	serverLang, err := r.profile.GetLanguage(ctx)
	if err != nil {
		r.log.Debug("profile language fetch failed, keeping local value", zap.Error(err))
		return
	}
	if serverLang == "" {
		return
	}

	normalized := Normalize(serverLang)
	r.mu.Lock()
	changed := normalized != r.current
	if changed {
		r.current = normalized
	}
	r.mu.Unlock()
	if changed {
		r.locale.Set(normalized)
	}
}

// SetLanguage applies an explicit user selection: in-memory state and UI
// locale change synchronously, the value is persisted locally, and when
// authenticated it is pushed to the server best-effort. A failed push never
// rolls back the local change.
func (r *Reconciler) SetLanguage(ctx context.Context, v string) error {
	normalized := Normalize(v)

	r.mu.Lock()
	r.current = normalized
	r.mu.Unlock()
	r.locale.Set(normalized)

	if err := r.local.Set(localstore.KeyLanguageID, normalized); err != nil {
		return err
	}

	if r.authed() {
		if err := r.profile.UpdateLanguage(ctx, normalized); err != nil {
			r.log.Debug("server language push failed, keeping local value", zap.Error(err))
		}
	}
	return nil
}
