package server

import (
	"strings"

	v1 "github.com/joseph-ayodele/research-agent/gen/proto/research/v1"

	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/registry"
)

// Subscribe streams the job's lifecycle events. The first event is always a
// connected replay of the current status and stage, so a subscriber attaching
// mid-run does not start blind. The stream ends when the client goes away or
// the job is deleted; a completed job's stream stays open until then because
// late resubscription is allowed.
func (s *ResearchService) Subscribe(req *v1.SubscribeRequest, stream v1.ResearchService_SubscribeServer) error {
	jobID := strings.TrimSpace(req.GetJobId())
	job, err := s.reg.Get(jobID)
	if err != nil {
		return common.GRPCFromError(err)
	}

	// Register before the replay so no event published after the snapshot
	// can be missed.
	events, cancel := s.bc.Subscribe(jobID)
	defer cancel()

	connected := &v1.JobEvent{
		Type:   string(registry.EventConnected),
		JobId:  jobID,
		Status: string(job.Status),
		Stage:  string(job.CurrentStage),
	}
	if err := stream.Send(connected); err != nil {
		return err
	}
	s.logger.Info("subscriber attached", "job_id", jobID)

	for {
		select {
		case <-stream.Context().Done():
			s.logger.Info("subscriber detached", "job_id", jobID)
			return nil
		case ev, ok := <-events:
			if !ok {
				// Pruned for falling behind, or the job was deleted.
				s.logger.Info("subscriber closed by broadcaster", "job_id", jobID)
				return nil
			}
			if err := stream.Send(toPBEvent(ev)); err != nil {
				return err
			}
		}
	}
}

func toPBEvent(ev registry.Event) *v1.JobEvent {
	return &v1.JobEvent{
		Type:    string(ev.Type),
		JobId:   ev.JobID,
		Status:  string(ev.Status),
		Stage:   string(ev.Stage),
		Message: ev.Message,
		Fields:  ev.Fields,
		Draft:   ev.Draft,
		Score:   ev.Score,
		Sources: ev.Sources,
	}
}
