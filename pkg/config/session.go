package config

import (
	"math/rand/v2"

	"github.com/gucio321/casteljau/pkg/session"
)

// NewSession builds a session of p. If controlPoints is empty, ControlPoints random
// points are generated from Seed (or from a random seed if it is 0).
func (p Profile) NewSession(controlPoints []session.Pt) (*session.Session, error) {
	cfg := p.SessionConfig()
	if len(controlPoints) > 0 {
		return session.NewWithControlPoints(cfg, controlPoints)
	}

	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return session.New(cfg, rand.New(rand.NewPCG(seed, seed)))
}
