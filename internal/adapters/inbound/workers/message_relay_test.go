package workers

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMessageRelay_Run(t *testing.T) {
	relay := usecases.NewMockRelayOutbox(t)

	relay.EXPECT().Execute(mock.Anything).Return(assert.AnError).Once()
	relay.EXPECT().Execute(mock.Anything).Return(nil).Once()
	relay.EXPECT().Execute(mock.Anything).Return(nil).Maybe()

	signalChan := make(chan struct{})

	mr := MessageRelay{
		RelayOutbox:         relay,
		Logger:              log.New(io.Discard, "", 0),
		Interval:            2 * time.Millisecond,
		workerExecutionChan: signalChan,
	}

	cancel, doneChan := run(t, context.Background(), mr)

	waitForBatchSignals(t, signalChan, 2, time.Second)

	go func() {
		for range signalChan {
		}
	}()
	cancel()
	waitRunnableStop(t, doneChan)
	close(signalChan)
}
