package repo

import (
	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"venturelens.dev/reportengine/internal/app/appconfig"
	"venturelens.dev/reportengine/internal/model"
)

// Result is the analysis result session store. Results are uploaded by the
// evaluation pipeline, held in memory for the lifetime of a report session,
// and expire on their own once no client has touched them for a while.
type Result struct {
	store *cache.Cache
}

func NewResult(conf *appconfig.Config) *Result {
	return &Result{
		store: cache.New(conf.ResultTTL, conf.ResultTTL/2),
	}
}

// Put stores a result under a fresh ID and returns the ID.
func (r *Result) Put(res *model.AnalysisResult) string {
	id := xid.New().String()
	r.store.Set(id, res, cache.DefaultExpiration)
	return id
}

// Replace overwrites an existing result in place, refreshing its TTL.
// Returns false when the ID is unknown or already expired.
func (r *Result) Replace(id string, res *model.AnalysisResult) bool {
	if _, ok := r.store.Get(id); !ok {
		return false
	}
	r.store.Set(id, res, cache.DefaultExpiration)
	return true
}

func (r *Result) Get(id string) (*model.AnalysisResult, bool) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*model.AnalysisResult), true
}

func (r *Result) Delete(id string) {
	r.store.Delete(id)
}

// Touch refreshes a result's TTL without changing its content.
func (r *Result) Touch(id string) {
	if v, ok := r.store.Get(id); ok {
		r.store.Set(id, v, cache.DefaultExpiration)
	}
}
