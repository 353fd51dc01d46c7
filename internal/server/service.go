package server

import (
	"context"
	"log/slog"
	"strings"

	v1 "github.com/joseph-ayodele/research-agent/gen/proto/research/v1"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/engine"
	"github.com/joseph-ayodele/research-agent/internal/executor"
	"github.com/joseph-ayodele/research-agent/internal/registry"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// ResearchService is the gRPC surface over the executor, registry, and
// broadcaster. Handlers validate, delegate, and translate errors; all
// pipeline work happens in driver goroutines the executor owns.
type ResearchService struct {
	v1.UnimplementedResearchServiceServer
	exec   *executor.Executor
	reg    *registry.Registry
	eng    *engine.Engine
	bc     *registry.Broadcaster
	logger *slog.Logger
}

func NewResearchService(exec *executor.Executor, reg *registry.Registry, eng *engine.Engine, bc *registry.Broadcaster, logger *slog.Logger) *ResearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResearchService{exec: exec, reg: reg, eng: eng, bc: bc, logger: logger}
}

func (s *ResearchService) SubmitResearch(ctx context.Context, req *v1.SubmitResearchRequest) (*v1.SubmitResearchResponse, error) {
	request, err := parseRequest(req)
	if err != nil {
		s.logger.Error("submit request rejected", "error", err)
		return nil, common.GRPCFromError(err)
	}

	job, err := s.exec.Submit(ctx, request)
	if err != nil {
		s.logger.Error("submit failed", "error", err)
		return nil, common.GRPCFromError(err)
	}

	s.logger.Info("research submitted", "job_id", job.ID, "query", request.Query)
	return &v1.SubmitResearchResponse{
		JobId:  job.ID,
		Status: string(job.Status),
	}, nil
}

func (s *ResearchService) GetStatus(_ context.Context, req *v1.GetStatusRequest) (*v1.GetStatusResponse, error) {
	view, err := s.reg.Status(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.GRPCFromError(err)
	}

	return &v1.GetStatusResponse{
		JobId:           view.JobID,
		Status:          string(view.Status),
		CurrentStage:    string(view.CurrentStage),
		ProgressSummary: view.Progress,
		Draft:           view.Draft,
		QualityScore:    view.QualityScore,
		Error:           view.Error,
		Sources:         view.Sources,
	}, nil
}

func (s *ResearchService) Resume(ctx context.Context, req *v1.ResumeRequest) (*v1.ResumeResponse, error) {
	jobID := strings.TrimSpace(req.GetJobId())
	if jobID == "" {
		return nil, common.InvalidArgumentError("job_id is required")
	}
	decision := constants.ParseDecision(req.GetDecision())

	if err := s.exec.Resume(ctx, jobID, decision, req.GetFeedback()); err != nil {
		s.logger.Error("resume failed", "job_id", jobID, "error", err)
		return nil, common.GRPCFromError(err)
	}

	s.logger.Info("research resumed", "job_id", jobID, "decision", decision)
	return &v1.ResumeResponse{
		JobId:  jobID,
		Status: string(constants.JobStatusProcessing),
	}, nil
}

func (s *ResearchService) GetResult(_ context.Context, req *v1.GetResultRequest) (*v1.GetResultResponse, error) {
	res, err := s.reg.Result(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.GRPCFromError(err)
	}

	return &v1.GetResultResponse{
		FinalArticle: res.FinalArticle,
		ExportPath:   res.ExportPath,
		Sources:      res.Sources,
		QualityScore: res.QualityScore,
	}, nil
}

func (s *ResearchService) DeleteResearch(ctx context.Context, req *v1.DeleteResearchRequest) (*v1.DeleteResearchResponse, error) {
	jobID := strings.TrimSpace(req.GetJobId())
	if err := s.reg.Delete(jobID); err != nil {
		return nil, common.GRPCFromError(err)
	}
	s.bc.DropJob(jobID)
	if err := s.eng.Discard(ctx, jobID); err != nil {
		s.logger.Error("checkpoint discard failed", "job_id", jobID, "error", err)
	}

	s.logger.Info("research deleted", "job_id", jobID)
	return &v1.DeleteResearchResponse{Deleted: true}, nil
}

func parseRequest(req *v1.SubmitResearchRequest) (state.Request, error) {
	format := req.GetExportFormat()
	if format == "" {
		format = string(constants.FormatMarkdown)
	}
	tone := req.GetTone()
	if tone == "" {
		tone = string(constants.ToneProfessional)
	}

	v := common.NewValidator()
	v.Require("query", req.GetQuery())
	v.MaxLength("query", req.GetQuery(), 500)
	v.IntRange("word_count", int(req.GetWordCount()), constants.MinWordCount, constants.MaxWordCount)
	v.OneOf("tone", tone, string(constants.ToneProfessional), string(constants.ToneCasual), string(constants.ToneTechnical))
	if err := v.Error(); err != nil {
		return state.Request{}, err
	}

	return state.Request{
		Query:        strings.TrimSpace(req.GetQuery()),
		ExportFormat: constants.NormalizeFormat(format),
		Tone:         constants.Tone(tone),
		WordCount:    int(req.GetWordCount()),
	}, nil
}
