package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scriptedProvider returns whatever fn says for each successive call.
type scriptedProvider struct {
	calls int
	fn    func(call int) (*Response, error)
}

func (s *scriptedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	s.calls++
	return s.fn(s.calls)
}

func (s *scriptedProvider) ModelID() string { return "scripted" }

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryTimeoutBoundsWholeCall(t *testing.T) {
	inner := &scriptedProvider{fn: func(int) (*Response, error) {
		return nil, &ErrRateLimit{RetryAfter: time.Hour, Err: errors.New("429")}
	}}
	p := WithRetry(inner, fastRetry(), 25*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("call took %s, timeout did not cut the retry wait short", elapsed)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	inner := &scriptedProvider{fn: func(call int) (*Response, error) {
		if call < 3 {
			return nil, &ErrProviderUnavailable{Err: errors.New("connection reset")}
		}
		return &Response{Content: json.RawMessage(`{}`), Model: "scripted"}, nil
	}}
	p := WithRetry(inner, fastRetry(), 0)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Model != "scripted" {
		t.Errorf("Model = %q, want scripted", resp.Model)
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestRetryInvalidResponseRegeneratedOnce(t *testing.T) {
	inner := &scriptedProvider{fn: func(int) (*Response, error) {
		return nil, &ErrInvalidResponse{Err: errors.New("not json")}
	}}
	p := WithRetry(inner, fastRetry(), 0)

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want exactly one regeneration", inner.calls)
	}
}

func TestRetryMaxTokensNotRetried(t *testing.T) {
	inner := &scriptedProvider{fn: func(int) (*Response, error) {
		return nil, &ErrMaxTokensExceeded{}
	}}
	p := WithRetry(inner, fastRetry(), 0)

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}
