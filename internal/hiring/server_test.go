package hiring

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
)

// slowExtractor stalls so per-chunk work is still in flight when the
// stream's receive side fails, then counts completions.
type slowExtractor struct {
	delay time.Duration
	done  atomic.Int32
}

func (e *slowExtractor) ExtractCandidate(context.Context, string) (*ai.ExtractedCandidate, error) {
	time.Sleep(e.delay)
	e.done.Add(1)
	return &ai.ExtractedCandidate{Name: "Ada", Email: "ada@example.com", Position: "Backend Developer"}, nil
}

// fakeAddManyStream serves canned chunks, then fails with recvErr.
type fakeAddManyStream struct {
	grpc.ServerStream

	chunks  []*hiringpb.CVChunk
	recvErr error
}

func (s *fakeAddManyStream) Context() context.Context { return context.Background() }

func (s *fakeAddManyStream) Recv() (*hiringpb.CVChunk, error) {
	if len(s.chunks) == 0 {
		return nil, s.recvErr
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

func (s *fakeAddManyStream) SendAndClose(*hiringpb.AddManySummary) error { return nil }

func TestAddManyCandidatesJoinsWorkOnRecvFailure(t *testing.T) {
	extractor := &slowExtractor{delay: 100 * time.Millisecond}
	svc := newTestService(&memStore{}, stubReader{text: "writes go services"}, extractor)
	server := NewServer(svc, 4, logger.NewNop())

	transportErr := errors.New("connection reset")
	stream := &fakeAddManyStream{
		chunks:  []*hiringpb.CVChunk{{PathCV: "ada.txt"}},
		recvErr: transportErr,
	}

	err := server.AddManyCandidates(stream)
	require.ErrorIs(t, err, transportErr)

	assert.Equal(t, int32(1), extractor.done.Load(),
		"in-flight chunk work must finish before the handler returns")
}
