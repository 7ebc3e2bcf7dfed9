package shared

import (
	"context"
	"errors"
	"fmt"
	"io"

	"lm-pipeline/plugin/proto"

	"google.golang.org/grpc"
)

// GRPCClient is an implementation of CausalLM that talks over RPC.
type GRPCClient struct{ client proto.CausalLMClient }

func NewGRPCClient(conn grpc.ClientConnInterface) *GRPCClient {
	return &GRPCClient{client: proto.NewCausalLMClient(conn)}
}

func (m *GRPCClient) Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error) {
	resp, err := m.client.Generate(ctx, &proto.GenerateRequest{
		InputIds:  inputIds,
		MaxLength: int32(maxLength),
	})
	if err != nil {
		return nil, err
	}

	return resp.OutputIds, nil
}

func (m *GRPCClient) Train(ctx context.Context, req TrainRequest, send func(TrainingEvent) error) error {
	stream, err := m.client.Train(ctx, &proto.TrainRequest{
		TrainFile: req.TrainFile,
		EvalFile:  req.EvalFile,
		OutputDir: req.OutputDir,
		Args: &proto.TrainingArgs{
			NumTrainEpochs:          int32(req.Args.Epochs),
			PerDeviceTrainBatchSize: int32(req.Args.BatchSize),
			SaveSteps:               int32(req.Args.SaveSteps),
			EvalSteps:               int32(req.Args.EvalSteps),
			LoggingSteps:            int32(req.Args.LoggingSteps),
			OverwriteOutputDir:      req.Args.OverwriteOutputDir,
		},
	})
	if err != nil {
		return err
	}

	for {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := send(eventFromProto(event)); err != nil {
			return fmt.Errorf("error handling training event: %w", err)
		}
	}
}

func (m *GRPCClient) Save(ctx context.Context, dir string) error {
	resp, err := m.client.Save(ctx, &proto.SaveRequest{Dir: dir})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("plugin reported failure saving model to %s", dir)
	}
	return nil
}

// Here is the gRPC server that GRPCClient talks to.
type GRPCServer struct {
	proto.UnimplementedCausalLMServer
	// This is the real implementation
	Impl CausalLM
}

func (m *GRPCServer) Generate(
	ctx context.Context,
	req *proto.GenerateRequest,
) (*proto.GenerateResponse, error) {
	v, err := m.Impl.Generate(ctx, req.InputIds, int(req.MaxLength))
	return &proto.GenerateResponse{OutputIds: v}, err
}

func (m *GRPCServer) Train(req *proto.TrainRequest, stream proto.CausalLM_TrainServer) error {
	args := req.GetArgs()
	return m.Impl.Train(stream.Context(), TrainRequest{
		TrainFile: req.TrainFile,
		EvalFile:  req.EvalFile,
		OutputDir: req.OutputDir,
		Args: TrainingArgs{
			Epochs:             int(args.GetNumTrainEpochs()),
			BatchSize:          int(args.GetPerDeviceTrainBatchSize()),
			SaveSteps:          int(args.GetSaveSteps()),
			EvalSteps:          int(args.GetEvalSteps()),
			LoggingSteps:       int(args.GetLoggingSteps()),
			OverwriteOutputDir: args.GetOverwriteOutputDir(),
		},
	}, func(event TrainingEvent) error {
		return stream.Send(&proto.TrainingEvent{
			Kind:       event.Kind,
			Step:       int32(event.Step),
			Epoch:      event.Epoch,
			Metrics:    event.Metrics,
			Checkpoint: event.Checkpoint,
		})
	})
}

func (m *GRPCServer) Save(
	ctx context.Context,
	req *proto.SaveRequest,
) (*proto.SaveResponse, error) {
	err := m.Impl.Save(ctx, req.Dir)
	if err != nil {
		return &proto.SaveResponse{Success: false}, err
	}
	return &proto.SaveResponse{Success: true}, nil
}

func eventFromProto(event *proto.TrainingEvent) TrainingEvent {
	var metrics map[string]float64
	if len(event.Metrics) > 0 {
		metrics = event.Metrics
	}
	return TrainingEvent{
		Kind:       event.Kind,
		Step:       int(event.Step),
		Epoch:      event.Epoch,
		Metrics:    metrics,
		Checkpoint: event.Checkpoint,
	}
}
