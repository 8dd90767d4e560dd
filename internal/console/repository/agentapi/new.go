package agentapi

import (
	pkgAgentAPI "sentellent-console/pkg/agentapi"
	pkgLog "sentellent-console/pkg/log"
)

type implRepository struct {
	l   pkgLog.Logger
	api pkgAgentAPI.API
}

// New creates the AgentRepository implementation backed by the agent
// backend HTTP client.
func New(l pkgLog.Logger, api pkgAgentAPI.API) *implRepository {
	return &implRepository{
		l:   l,
		api: api,
	}
}
