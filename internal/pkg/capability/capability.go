// Package capability guards the one-time initialization of the heavyweight
// rendering engines (chart construction, PDF emission). Loading is lazy and
// shared: a concurrent caller joins the in-flight load rather than triggering
// a duplicate one. Once loaded, the handles are fully synchronous.
package capability

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

type Provider struct {
	sf singleflight.Group

	mu     sync.RWMutex
	charts *Charts
	export *Export
}

func NewProvider() *Provider {
	return &Provider{}
}

// Charts returns the shared chart engine, loading it on first use.
func (p *Provider) Charts(ctx context.Context) (*Charts, error) {
	p.mu.RLock()
	c := p.charts
	p.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	v, err, _ := p.sf.Do("charts", func() (interface{}, error) {
		c, err := loadCharts()
		if err != nil {
			return nil, errors.Wrap(err, "loading chart engine")
		}
		p.mu.Lock()
		p.charts = c
		p.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// the load itself is not cancelled; the caller must re-check its own
		// liveness before mutating anything with the handle
		return nil, err
	}
	return v.(*Charts), nil
}

// Export returns the shared export engine, loading it on first use.
func (p *Provider) Export(ctx context.Context) (*Export, error) {
	p.mu.RLock()
	e := p.export
	p.mu.RUnlock()
	if e != nil {
		return e, nil
	}

	v, err, _ := p.sf.Do("export", func() (interface{}, error) {
		e, err := loadExport()
		if err != nil {
			return nil, errors.Wrap(err, "loading export engine")
		}
		p.mu.Lock()
		p.export = e
		p.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v.(*Export), nil
}
