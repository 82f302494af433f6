package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeedRecordsLifecycle(t *testing.T) {
	feed := NewFeed(10)
	ctx := context.Background()

	feed.ExportStarted(ctx, "invoice-12345-customer.pdf")
	feed.ExportSucceeded(ctx, "invoice-12345-customer.pdf")
	feed.ExportFailed(ctx, "invoice-12345-owner.pdf")

	events := feed.Recent()
	require.Len(t, events, 3)
	assert.Equal(t, EventStarted, events[0].Kind)
	assert.Equal(t, "Generating PDF...", events[0].Message)
	assert.Equal(t, EventSucceeded, events[1].Kind)
	assert.Equal(t, "PDF invoice-12345-customer.pdf has been saved", events[1].Message)
	assert.Equal(t, EventFailed, events[2].Kind)
	assert.Equal(t, "There was an error generating the PDF. Please try again.", events[2].Message)
	for _, e := range events {
		assert.False(t, e.At.IsZero())
	}
}

func TestFeedDropsOldestBeyondLimit(t *testing.T) {
	feed := NewFeed(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		feed.ExportStarted(ctx, fmt.Sprintf("invoice-%d.pdf", i))
	}

	events := feed.Recent()
	require.Len(t, events, 3)
	assert.Equal(t, "invoice-2.pdf", events[0].Artifact)
	assert.Equal(t, "invoice-4.pdf", events[2].Artifact)
}

func TestFeedRecentReturnsCopy(t *testing.T) {
	feed := NewFeed(10)
	feed.ExportStarted(context.Background(), "a.pdf")

	events := feed.Recent()
	events[0].Artifact = "mutated"

	assert.Equal(t, "a.pdf", feed.Recent()[0].Artifact)
}

func TestCompositeFansOut(t *testing.T) {
	first := NewFeed(10)
	second := NewFeed(10)
	composite := NewComposite(first, second)

	composite.ExportStarted(context.Background(), "a.pdf")
	composite.ExportFailed(context.Background(), "a.pdf")

	assert.Len(t, first.Recent(), 2)
	assert.Len(t, second.Recent(), 2)
}

func TestLogProviderDoesNotPanic(t *testing.T) {
	p := NewLog(zap.NewNop())
	ctx := context.Background()

	p.ExportStarted(ctx, "a.pdf")
	p.ExportSucceeded(ctx, "a.pdf")
	p.ExportFailed(ctx, "a.pdf")
}
