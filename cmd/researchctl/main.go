package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/joseph-ayodele/research-agent/gen/proto/research/v1"
)

const usage = `usage: researchctl <command> [args]

commands:
  submit <query> [word_count] [format] [tone]   start a research job
  status <job_id>                               show job status
  resume <job_id> <approve|edit|reject> [feedback]
  result <job_id>                               print the final article
  delete <job_id>                               remove a job
  watch  <job_id>                               stream live events

environment:
  RESEARCHD_ADDR   daemon address (default localhost:8080)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	addr := os.Getenv("RESEARCHD_ADDR")
	if addr == "" {
		addr = "localhost:8080"
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fatalf("connect %s: %v", addr, err)
	}
	defer conn.Close()
	client := v1.NewResearchServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "submit":
		cmdSubmit(ctx, client, os.Args[2:])
	case "status":
		cmdStatus(ctx, client, os.Args[2:])
	case "resume":
		cmdResume(ctx, client, os.Args[2:])
	case "result":
		cmdResult(ctx, client, os.Args[2:])
	case "delete":
		cmdDelete(ctx, client, os.Args[2:])
	case "watch":
		cmdWatch(client, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func cmdSubmit(ctx context.Context, client v1.ResearchServiceClient, args []string) {
	if len(args) < 1 {
		fatalf("submit requires a query")
	}
	req := &v1.SubmitResearchRequest{
		Query:     args[0],
		WordCount: 1000,
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fatalf("word_count must be a number: %v", err)
		}
		req.WordCount = int32(n)
	}
	if len(args) > 2 {
		req.ExportFormat = args[2]
	}
	if len(args) > 3 {
		req.Tone = args[3]
	}

	resp, err := client.SubmitResearch(ctx, req)
	if err != nil {
		fatalf("submit: %v", err)
	}
	fmt.Printf("job %s  status %s\n", resp.GetJobId(), resp.GetStatus())
}

func cmdStatus(ctx context.Context, client v1.ResearchServiceClient, args []string) {
	if len(args) < 1 {
		fatalf("status requires a job id")
	}
	resp, err := client.GetStatus(ctx, &v1.GetStatusRequest{JobId: args[0]})
	if err != nil {
		fatalf("status: %v", err)
	}
	fmt.Printf("job     %s\nstatus  %s\nstage   %s\n%s\n",
		resp.GetJobId(), resp.GetStatus(), resp.GetCurrentStage(), resp.GetProgressSummary())
	if srcs := resp.GetSources(); len(srcs) > 0 {
		fmt.Println("sources:")
		for _, src := range srcs {
			fmt.Printf("  %s\n", src)
		}
	}
	if resp.GetDraft() != "" {
		fmt.Printf("\n--- draft awaiting review (score %.0f) ---\n%s\n", resp.GetQualityScore(), resp.GetDraft())
	}
	if resp.GetError() != "" {
		fmt.Printf("error: %s\n", resp.GetError())
	}
}

func cmdResume(ctx context.Context, client v1.ResearchServiceClient, args []string) {
	if len(args) < 2 {
		fatalf("resume requires a job id and a decision")
	}
	feedback := ""
	if len(args) > 2 {
		feedback = args[2]
	}
	resp, err := client.Resume(ctx, &v1.ResumeRequest{
		JobId:    args[0],
		Decision: args[1],
		Feedback: feedback,
	})
	if err != nil {
		fatalf("resume: %v", err)
	}
	fmt.Printf("job %s  status %s\n", resp.GetJobId(), resp.GetStatus())
}

func cmdResult(ctx context.Context, client v1.ResearchServiceClient, args []string) {
	if len(args) < 1 {
		fatalf("result requires a job id")
	}
	resp, err := client.GetResult(ctx, &v1.GetResultRequest{JobId: args[0]})
	if err != nil {
		fatalf("result: %v", err)
	}
	fmt.Println(resp.GetFinalArticle())
	fmt.Printf("\nexported to %s  (score %.0f/100)\n", resp.GetExportPath(), resp.GetQualityScore())
	for _, src := range resp.GetSources() {
		fmt.Printf("  - %s\n", src)
	}
}

func cmdDelete(ctx context.Context, client v1.ResearchServiceClient, args []string) {
	if len(args) < 1 {
		fatalf("delete requires a job id")
	}
	if _, err := client.DeleteResearch(ctx, &v1.DeleteResearchRequest{JobId: args[0]}); err != nil {
		fatalf("delete: %v", err)
	}
	fmt.Println("deleted")
}

func cmdWatch(client v1.ResearchServiceClient, args []string) {
	if len(args) < 1 {
		fatalf("watch requires a job id")
	}
	// No deadline: review suspensions wait on a human.
	stream, err := client.Subscribe(context.Background(), &v1.SubscribeRequest{JobId: args[0]})
	if err != nil {
		fatalf("subscribe: %v", err)
	}
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			fatalf("stream: %v", err)
		}
		switch ev.GetType() {
		case "hitl_checkpoint":
			fmt.Printf("[%s] review ready, score %.0f\n%s\n", ev.GetType(), ev.GetScore(), ev.GetDraft())
		case "node_complete":
			fmt.Printf("[%s] %s -> %v\n", ev.GetType(), ev.GetStage(), ev.GetFields())
		default:
			fmt.Printf("[%s] %s %s\n", ev.GetType(), ev.GetStatus(), ev.GetMessage())
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
