// Package pipeline implements the packet processing pipeline engine.
package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/decode"
	"firestige.xyz/strix/internal/inspect"
)

// Source produces raw packets until it is exhausted or stopped.
type Source interface {
	ReadPacket() (core.RawPacket, error)
	Stop() error
}

// Sink consumes inspection results.
type Sink interface {
	Send(*core.OutputPacket) error
	Close() error
}

// Pipeline is a single-threaded source → decode → inspect → sink chain.
type Pipeline struct {
	source    Source
	decoder   decode.Decoder
	inspector *inspect.Inspector
	sink      Sink
	metrics   *Metrics
	log       *logrus.Entry

	// Channel for backpressure control
	rawCh chan core.RawPacket
	wg    sync.WaitGroup
}

// Config contains pipeline configuration.
type Config struct {
	Source     Source
	Decoder    decode.Decoder
	Inspector  *inspect.Inspector
	Sink       Sink
	BufferSize int // Raw packet channel buffer size
	Log        *logrus.Logger
}

// New creates a new pipeline.
func New(cfg Config) *Pipeline {
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 1024
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}

	return &Pipeline{
		source:    cfg.Source,
		decoder:   cfg.Decoder,
		inspector: cfg.Inspector,
		sink:      cfg.Sink,
		metrics:   NewMetrics(),
		log:       cfg.Log.WithField("component", "pipeline"),
		rawCh:     make(chan core.RawPacket, cfg.BufferSize),
	}
}

// Metrics returns the pipeline's counters.
func (p *Pipeline) Metrics() *Metrics { return p.metrics }

// Run processes packets until the source is exhausted or ctx is cancelled.
// It owns the source and sink lifecycles from this point: both are closed
// before Run returns.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.log.Info("pipeline starting")

	p.wg.Add(1)
	go p.readLoop(ctx)

	err := p.processLoop(ctx)

	cancel()
	p.wg.Wait()

	if serr := p.source.Stop(); serr != nil {
		p.log.WithError(serr).Warn("source stop failed")
	}
	if cerr := p.sink.Close(); cerr != nil {
		p.log.WithError(cerr).Warn("sink close failed")
	}

	p.log.WithFields(logrus.Fields{
		"received":  p.metrics.Received.Load(),
		"inspected": p.metrics.Inspected.Load(),
		"rtp":       p.metrics.RTP.Load(),
		"rtcp":      p.metrics.RTCP.Load(),
		"discovery": p.metrics.Discovery.Load(),
		"keepalive": p.metrics.Keepalive.Load(),
		"unknown":   p.metrics.Unknown.Load(),
	}).Info("pipeline stopped")

	return err
}

// readLoop pulls frames from the source into the processing channel.
func (p *Pipeline) readLoop(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.rawCh)

	for {
		raw, err := p.source.ReadPacket()
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				p.log.WithError(err).Error("read failed")
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case p.rawCh <- raw:
		}
	}
}

// processLoop is the main processing loop.
func (p *Pipeline) processLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return core.ErrPipelineStopped

		case raw, ok := <-p.rawCh:
			if !ok {
				// Channel closed, source exhausted.
				return nil
			}

			p.metrics.Received.Add(1)

			if err := p.processPacket(&raw); err != nil {
				// Log error but continue processing
				p.log.WithError(err).Debug("packet processing failed")
			}
		}
	}
}

// processPacket runs one frame through decode, inspect, and the sink.
func (p *Pipeline) processPacket(raw *core.RawPacket) error {
	decoded, err := p.decoder.Decode(*raw)
	if err != nil {
		if errors.Is(err, core.ErrNotUDP) {
			p.metrics.DecodeSkipped.Add(1)
			return nil
		}
		return err
	}
	p.metrics.Decoded.Add(1)

	out, err := p.inspector.Inspect(&decoded)
	if err != nil {
		p.metrics.InspectErrors.Add(1)
		return err
	}
	p.metrics.Inspected.Add(1)
	p.metrics.countKind(out.PayloadKind)

	if err := p.sink.Send(&out); err != nil {
		p.metrics.SendErrors.Add(1)
		return err
	}
	p.metrics.Sent.Add(1)
	return nil
}
