package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces queue operation identifiers of the form
// <unix-millis>-<8-char random suffix>. Ids sort roughly by creation time
// and are collision-tolerant, not cryptographically unique.
type IDGenerator struct {
	now func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Generate() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), suffix)
}
