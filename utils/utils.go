package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// PackStruct 把结构化记录打包成 Any
func PackStruct(fields map[string]any) (*anypb.Any, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return anypb.New(s)
}

// UnpackStruct 从 Any 中取出结构化记录
func UnpackStruct(data *anypb.Any) (map[string]any, error) {
	s := &structpb.Struct{}
	if err := data.UnmarshalTo(s); err != nil {
		logger.Log.Errorf("unpack %s failed: %v", data.GetTypeUrl(), err)
		return nil, err
	}
	return s.AsMap(), nil
}
