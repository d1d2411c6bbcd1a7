package service

import (
	"sync"

	"github.com/moneygate/tool-service/models"
)

// sessionCache mirrors each owner's tool list in memory so the current
// session can render without a round trip. The repository stays the source
// of truth; the cache is refreshed wholesale on every list.
type sessionCache struct {
	mu    sync.Mutex
	tools map[string][]*models.GeneratedTool
}

func newSessionCache() *sessionCache {
	return &sessionCache{tools: make(map[string][]*models.GeneratedTool)}
}

// add prepends, keeping the newest-first order the repository returns.
func (c *sessionCache) add(tool *models.GeneratedTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tools[tool.OwnerID] = append([]*models.GeneratedTool{tool}, c.tools[tool.OwnerID]...)
}

// remove allocates a fresh slice: the cached one may share its backing
// array with a list a caller is still holding.
func (c *sessionCache) remove(ownerID, toolID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.tools[ownerID]
	out := make([]*models.GeneratedTool, 0, len(list))
	for _, t := range list {
		if t.ID.String() != toolID {
			out = append(out, t)
		}
	}
	c.tools[ownerID] = out
}

func (c *sessionCache) replaceAll(ownerID string, tools []*models.GeneratedTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tools[ownerID] = tools
}

func (c *sessionCache) snapshot(ownerID string) []*models.GeneratedTool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*models.GeneratedTool, len(c.tools[ownerID]))
	copy(out, c.tools[ownerID])
	return out
}
