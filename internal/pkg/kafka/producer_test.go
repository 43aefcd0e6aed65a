package kafka

import (
	"context"
	"testing"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerWithoutBrokers(t *testing.T) {
	p := NewProducer("", "catchcraft-exports")
	require.IsType(t, &mockProducer{}, p)

	err := p.SendMessage(context.Background(), "session", entity.ExportEvent{SessionID: "session"})
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
