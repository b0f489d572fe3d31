package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/fortitrack/pkg/structs"
)

func TestServiceOptions(t *testing.T) {
	cases := []struct {
		Name    string
		Given   optsService
		Policy  structs.TransitionPolicy
		Stuck   time.Duration
		Retries int
	}{
		{"Defaults", optsService{}, structs.PolicyStrict, 4 * time.Hour, 5},
		{"AuditRetries", optsService{AuditRetries: 9}, structs.PolicyStrict, 4 * time.Hour, 9},
		{"Permissive", optsService{Permissive: true, StuckAfter: time.Hour}, structs.PolicyPermissive, time.Hour, 5},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			opts := c.Given.options()

			assert.Equal(t, c.Policy, opts.TransitionPolicy)
			assert.Equal(t, c.Stuck, opts.StuckAfter)
			assert.Equal(t, c.Retries, opts.AuditRetries)
		})
	}
}

func TestAPIQueueCarriesAuditRetries(t *testing.T) {
	c := &optsAPI{optsService: optsService{AuditRetries: 11}}

	qu, err := c.queue(c.options().AuditRetries)
	assert.Nil(t, err)
	defer qu.Close()

	assert.Equal(t, 11, qu.MaxRetry())
}
