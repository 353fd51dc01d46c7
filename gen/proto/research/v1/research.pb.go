// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: research/v1/research.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitResearchRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Query string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	// markdown (default), docx, or notion.
	ExportFormat string `protobuf:"bytes,2,opt,name=export_format,json=exportFormat,proto3" json:"export_format,omitempty"`
	// professional (default), casual, or technical.
	Tone string `protobuf:"bytes,3,opt,name=tone,proto3" json:"tone,omitempty"`
	// Target article length, 500 to 2000 words.
	WordCount     int32 `protobuf:"varint,4,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitResearchRequest) Reset() {
	*x = SubmitResearchRequest{}
	mi := &file_research_v1_research_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitResearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitResearchRequest) ProtoMessage() {}

func (x *SubmitResearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitResearchRequest.ProtoReflect.Descriptor instead.
func (*SubmitResearchRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitResearchRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SubmitResearchRequest) GetExportFormat() string {
	if x != nil {
		return x.ExportFormat
	}
	return ""
}

func (x *SubmitResearchRequest) GetTone() string {
	if x != nil {
		return x.Tone
	}
	return ""
}

func (x *SubmitResearchRequest) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

type SubmitResearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitResearchResponse) Reset() {
	*x = SubmitResearchResponse{}
	mi := &file_research_v1_research_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitResearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitResearchResponse) ProtoMessage() {}

func (x *SubmitResearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitResearchResponse.ProtoReflect.Descriptor instead.
func (*SubmitResearchResponse) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitResearchResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitResearchResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusRequest) Reset() {
	*x = GetStatusRequest{}
	mi := &file_research_v1_research_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusRequest) ProtoMessage() {}

func (x *GetStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusRequest.ProtoReflect.Descriptor instead.
func (*GetStatusRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{2}
}

func (x *GetStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetStatusResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	JobId           string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status          string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CurrentStage    string                 `protobuf:"bytes,3,opt,name=current_stage,json=currentStage,proto3" json:"current_stage,omitempty"`
	ProgressSummary string                 `protobuf:"bytes,4,opt,name=progress_summary,json=progressSummary,proto3" json:"progress_summary,omitempty"`
	// Populated only while the job is parked at the review checkpoint.
	Draft        string  `protobuf:"bytes,5,opt,name=draft,proto3" json:"draft,omitempty"`
	QualityScore float64 `protobuf:"fixed64,6,opt,name=quality_score,json=qualityScore,proto3" json:"quality_score,omitempty"`
	Error        string  `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	// Accepted source URLs gathered so far.
	Sources       []string `protobuf:"bytes,8,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusResponse) Reset() {
	*x = GetStatusResponse{}
	mi := &file_research_v1_research_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusResponse) ProtoMessage() {}

func (x *GetStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusResponse.ProtoReflect.Descriptor instead.
func (*GetStatusResponse) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{3}
}

func (x *GetStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetStatusResponse) GetCurrentStage() string {
	if x != nil {
		return x.CurrentStage
	}
	return ""
}

func (x *GetStatusResponse) GetProgressSummary() string {
	if x != nil {
		return x.ProgressSummary
	}
	return ""
}

func (x *GetStatusResponse) GetDraft() string {
	if x != nil {
		return x.Draft
	}
	return ""
}

func (x *GetStatusResponse) GetQualityScore() float64 {
	if x != nil {
		return x.QualityScore
	}
	return 0
}

func (x *GetStatusResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *GetStatusResponse) GetSources() []string {
	if x != nil {
		return x.Sources
	}
	return nil
}

type ResumeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// approve, edit, or reject. Unrecognized values take the approve branch.
	Decision      string `protobuf:"bytes,2,opt,name=decision,proto3" json:"decision,omitempty"`
	Feedback      string `protobuf:"bytes,3,opt,name=feedback,proto3" json:"feedback,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeRequest) Reset() {
	*x = ResumeRequest{}
	mi := &file_research_v1_research_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeRequest) ProtoMessage() {}

func (x *ResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeRequest.ProtoReflect.Descriptor instead.
func (*ResumeRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{4}
}

func (x *ResumeRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ResumeRequest) GetDecision() string {
	if x != nil {
		return x.Decision
	}
	return ""
}

func (x *ResumeRequest) GetFeedback() string {
	if x != nil {
		return x.Feedback
	}
	return ""
}

type ResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeResponse) Reset() {
	*x = ResumeResponse{}
	mi := &file_research_v1_research_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeResponse) ProtoMessage() {}

func (x *ResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeResponse.ProtoReflect.Descriptor instead.
func (*ResumeResponse) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{5}
}

func (x *ResumeResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ResumeResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultRequest) Reset() {
	*x = GetResultRequest{}
	mi := &file_research_v1_research_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultRequest) ProtoMessage() {}

func (x *GetResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultRequest.ProtoReflect.Descriptor instead.
func (*GetResultRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{6}
}

func (x *GetResultRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FinalArticle  string                 `protobuf:"bytes,1,opt,name=final_article,json=finalArticle,proto3" json:"final_article,omitempty"`
	ExportPath    string                 `protobuf:"bytes,2,opt,name=export_path,json=exportPath,proto3" json:"export_path,omitempty"`
	Sources       []string               `protobuf:"bytes,3,rep,name=sources,proto3" json:"sources,omitempty"`
	QualityScore  float64                `protobuf:"fixed64,4,opt,name=quality_score,json=qualityScore,proto3" json:"quality_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultResponse) Reset() {
	*x = GetResultResponse{}
	mi := &file_research_v1_research_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultResponse) ProtoMessage() {}

func (x *GetResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultResponse.ProtoReflect.Descriptor instead.
func (*GetResultResponse) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{7}
}

func (x *GetResultResponse) GetFinalArticle() string {
	if x != nil {
		return x.FinalArticle
	}
	return ""
}

func (x *GetResultResponse) GetExportPath() string {
	if x != nil {
		return x.ExportPath
	}
	return ""
}

func (x *GetResultResponse) GetSources() []string {
	if x != nil {
		return x.Sources
	}
	return nil
}

func (x *GetResultResponse) GetQualityScore() float64 {
	if x != nil {
		return x.QualityScore
	}
	return 0
}

type DeleteResearchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteResearchRequest) Reset() {
	*x = DeleteResearchRequest{}
	mi := &file_research_v1_research_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteResearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteResearchRequest) ProtoMessage() {}

func (x *DeleteResearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteResearchRequest.ProtoReflect.Descriptor instead.
func (*DeleteResearchRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteResearchRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type DeleteResearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteResearchResponse) Reset() {
	*x = DeleteResearchResponse{}
	mi := &file_research_v1_research_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteResearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteResearchResponse) ProtoMessage() {}

func (x *DeleteResearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteResearchResponse.ProtoReflect.Descriptor instead.
func (*DeleteResearchResponse) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteResearchResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type SubscribeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_research_v1_research_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{10}
}

func (x *SubscribeRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// connected, status_update, node_complete, hitl_checkpoint, or error.
	Type    string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	JobId   string `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status  string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Stage   string `protobuf:"bytes,4,opt,name=stage,proto3" json:"stage,omitempty"`
	Message string `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	// State fields the completed node touched.
	Fields []string `protobuf:"bytes,6,rep,name=fields,proto3" json:"fields,omitempty"`
	// Review checkpoint payload.
	Draft         string   `protobuf:"bytes,7,opt,name=draft,proto3" json:"draft,omitempty"`
	Score         float64  `protobuf:"fixed64,8,opt,name=score,proto3" json:"score,omitempty"`
	Sources       []string `protobuf:"bytes,9,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobEvent) Reset() {
	*x = JobEvent{}
	mi := &file_research_v1_research_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobEvent) ProtoMessage() {}

func (x *JobEvent) ProtoReflect() protoreflect.Message {
	mi := &file_research_v1_research_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobEvent.ProtoReflect.Descriptor instead.
func (*JobEvent) Descriptor() ([]byte, []int) {
	return file_research_v1_research_proto_rawDescGZIP(), []int{11}
}

func (x *JobEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *JobEvent) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobEvent) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobEvent) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *JobEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *JobEvent) GetFields() []string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *JobEvent) GetDraft() string {
	if x != nil {
		return x.Draft
	}
	return ""
}

func (x *JobEvent) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *JobEvent) GetSources() []string {
	if x != nil {
		return x.Sources
	}
	return nil
}

var File_research_v1_research_proto protoreflect.FileDescriptor

const file_research_v1_research_proto_rawDesc = "" +
	"\n" +
	"\x1aresearch/v1/research.proto\x12\vresearch.v1\"\x85\x01\n" +
	"\x15SubmitResearchRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12#\n" +
	"\rexport_format\x18\x02 \x01(\tR\fexportFormat\x12\x12\n" +
	"\x04tone\x18\x03 \x01(\tR\x04tone\x12\x1d\n" +
	"\n" +
	"word_count\x18\x04 \x01(\x05R\twordCount\"G\n" +
	"\x16SubmitResearchResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\")\n" +
	"\x10GetStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xfd\x01\n" +
	"\x11GetStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12#\n" +
	"\rcurrent_stage\x18\x03 \x01(\tR\fcurrentStage\x12)\n" +
	"\x10progress_summary\x18\x04 \x01(\tR\x0fprogressSummary\x12\x14\n" +
	"\x05draft\x18\x05 \x01(\tR\x05draft\x12#\n" +
	"\rquality_score\x18\x06 \x01(\x01R\fqualityScore\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\x12\x18\n" +
	"\asources\x18\b \x03(\tR\asources\"^\n" +
	"\rResumeRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bdecision\x18\x02 \x01(\tR\bdecision\x12\x1a\n" +
	"\bfeedback\x18\x03 \x01(\tR\bfeedback\"?\n" +
	"\x0eResumeResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\")\n" +
	"\x10GetResultRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x98\x01\n" +
	"\x11GetResultResponse\x12#\n" +
	"\rfinal_article\x18\x01 \x01(\tR\ffinalArticle\x12\x1f\n" +
	"\vexport_path\x18\x02 \x01(\tR\n" +
	"exportPath\x12\x18\n" +
	"\asources\x18\x03 \x03(\tR\asources\x12#\n" +
	"\rquality_score\x18\x04 \x01(\x01R\fqualityScore\".\n" +
	"\x15DeleteResearchRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"2\n" +
	"\x16DeleteResearchResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\")\n" +
	"\x10SubscribeRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xdb\x01\n" +
	"\bJobEvent\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05stage\x18\x04 \x01(\tR\x05stage\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\x12\x16\n" +
	"\x06fields\x18\x06 \x03(\tR\x06fields\x12\x14\n" +
	"\x05draft\x18\a \x01(\tR\x05draft\x12\x14\n" +
	"\x05score\x18\b \x01(\x01R\x05score\x12\x18\n" +
	"\asources\x18\t \x03(\tR\asources2\xe7\x03\n" +
	"\x0fResearchService\x12Y\n" +
	"\x0eSubmitResearch\x12\".research.v1.SubmitResearchRequest\x1a#.research.v1.SubmitResearchResponse\x12J\n" +
	"\tGetStatus\x12\x1d.research.v1.GetStatusRequest\x1a\x1e.research.v1.GetStatusResponse\x12A\n" +
	"\x06Resume\x12\x1a.research.v1.ResumeRequest\x1a\x1b.research.v1.ResumeResponse\x12J\n" +
	"\tGetResult\x12\x1d.research.v1.GetResultRequest\x1a\x1e.research.v1.GetResultResponse\x12Y\n" +
	"\x0eDeleteResearch\x12\".research.v1.DeleteResearchRequest\x1a#.research.v1.DeleteResearchResponse\x12C\n" +
	"\tSubscribe\x12\x1d.research.v1.SubscribeRequest\x1a\x15.research.v1.JobEvent0\x01BCZAgithub.com/joseph-ayodele/research-agent/gen/proto/research/v1;v1b\x06proto3"

var (
	file_research_v1_research_proto_rawDescOnce sync.Once
	file_research_v1_research_proto_rawDescData []byte
)

func file_research_v1_research_proto_rawDescGZIP() []byte {
	file_research_v1_research_proto_rawDescOnce.Do(func() {
		file_research_v1_research_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_research_v1_research_proto_rawDesc), len(file_research_v1_research_proto_rawDesc)))
	})
	return file_research_v1_research_proto_rawDescData
}

var file_research_v1_research_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_research_v1_research_proto_goTypes = []any{
	(*SubmitResearchRequest)(nil),  // 0: research.v1.SubmitResearchRequest
	(*SubmitResearchResponse)(nil), // 1: research.v1.SubmitResearchResponse
	(*GetStatusRequest)(nil),       // 2: research.v1.GetStatusRequest
	(*GetStatusResponse)(nil),      // 3: research.v1.GetStatusResponse
	(*ResumeRequest)(nil),          // 4: research.v1.ResumeRequest
	(*ResumeResponse)(nil),         // 5: research.v1.ResumeResponse
	(*GetResultRequest)(nil),       // 6: research.v1.GetResultRequest
	(*GetResultResponse)(nil),      // 7: research.v1.GetResultResponse
	(*DeleteResearchRequest)(nil),  // 8: research.v1.DeleteResearchRequest
	(*DeleteResearchResponse)(nil), // 9: research.v1.DeleteResearchResponse
	(*SubscribeRequest)(nil),       // 10: research.v1.SubscribeRequest
	(*JobEvent)(nil),               // 11: research.v1.JobEvent
}
var file_research_v1_research_proto_depIdxs = []int32{
	0,  // 0: research.v1.ResearchService.SubmitResearch:input_type -> research.v1.SubmitResearchRequest
	2,  // 1: research.v1.ResearchService.GetStatus:input_type -> research.v1.GetStatusRequest
	4,  // 2: research.v1.ResearchService.Resume:input_type -> research.v1.ResumeRequest
	6,  // 3: research.v1.ResearchService.GetResult:input_type -> research.v1.GetResultRequest
	8,  // 4: research.v1.ResearchService.DeleteResearch:input_type -> research.v1.DeleteResearchRequest
	10, // 5: research.v1.ResearchService.Subscribe:input_type -> research.v1.SubscribeRequest
	1,  // 6: research.v1.ResearchService.SubmitResearch:output_type -> research.v1.SubmitResearchResponse
	3,  // 7: research.v1.ResearchService.GetStatus:output_type -> research.v1.GetStatusResponse
	5,  // 8: research.v1.ResearchService.Resume:output_type -> research.v1.ResumeResponse
	7,  // 9: research.v1.ResearchService.GetResult:output_type -> research.v1.GetResultResponse
	9,  // 10: research.v1.ResearchService.DeleteResearch:output_type -> research.v1.DeleteResearchResponse
	11, // 11: research.v1.ResearchService.Subscribe:output_type -> research.v1.JobEvent
	6,  // [6:12] is the sub-list for method output_type
	0,  // [0:6] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_research_v1_research_proto_init() }
func file_research_v1_research_proto_init() {
	if File_research_v1_research_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_research_v1_research_proto_rawDesc), len(file_research_v1_research_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_research_v1_research_proto_goTypes,
		DependencyIndexes: file_research_v1_research_proto_depIdxs,
		MessageInfos:      file_research_v1_research_proto_msgTypes,
	}.Build()
	File_research_v1_research_proto = out.File
	file_research_v1_research_proto_goTypes = nil
	file_research_v1_research_proto_depIdxs = nil
}
