package interview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
)

// slowStore delays inserts so fan-out work is still in flight when the
// stream's receive side fails.
type slowStore struct {
	*memStore
	delay time.Duration
}

func (s *slowStore) InsertInterview(ctx context.Context, iv Interview) (Interview, error) {
	time.Sleep(s.delay)
	return s.memStore.InsertInterview(ctx, iv)
}

// fakeRescheduleStream serves canned records, then fails with recvErr. It
// records whether Send is ever called after the handler has returned.
type fakeRescheduleStream struct {
	grpc.ServerStream

	recvs   []*interviewpb.Interview
	recvErr error

	mu              sync.Mutex
	handlerReturned bool
	sentAfterReturn bool
}

func (s *fakeRescheduleStream) Context() context.Context { return context.Background() }

func (s *fakeRescheduleStream) Recv() (*interviewpb.Interview, error) {
	if len(s.recvs) == 0 {
		return nil, s.recvErr
	}
	rec := s.recvs[0]
	s.recvs = s.recvs[1:]
	return rec, nil
}

func (s *fakeRescheduleStream) Send(*interviewpb.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handlerReturned {
		s.sentAfterReturn = true
	}
	return nil
}

func (s *fakeRescheduleStream) markReturned() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlerReturned = true
}

func (s *fakeRescheduleStream) sentLate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sentAfterReturn
}

func TestStreamAndRescheduleJoinsWorkOnRecvFailure(t *testing.T) {
	store := &slowStore{memStore: newMemStore(), delay: 150 * time.Millisecond}
	svc := newTestService(store)
	svc.pick = func(int) int { return 0 }
	server := NewServer(svc, 4, logger.NewNop())

	transportErr := errors.New("connection reset")
	stream := &fakeRescheduleStream{
		recvs: []*interviewpb.Interview{
			{CandidateName: "Ada", Date: "2025-03-10"},
		},
		recvErr: transportErr,
	}

	err := server.StreamAndReschedule(stream)
	stream.markReturned()
	require.ErrorIs(t, err, transportErr)

	// Give any leaked goroutine time to touch the stream.
	time.Sleep(3 * store.delay)
	assert.False(t, stream.sentLate(),
		"no goroutine may call Send once the handler has returned")
}
