// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: leases/v1/leases.proto

package leasesv1

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

type Portfolio struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Region        string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Portfolio) Reset() {
	*x = Portfolio{}
	mi := &file_leases_v1_leases_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Portfolio) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Portfolio) ProtoMessage() {}

func (x *Portfolio) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Portfolio.ProtoReflect.Descriptor instead.
func (*Portfolio) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{0}
}

func (x *Portfolio) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Portfolio) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Portfolio) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Portfolio) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Portfolio) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Portfolio) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Lease struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PortfolioId string                 `protobuf:"bytes,2,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	Name        string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	// 0 means not extracted; annual_rent is always whole dollars
	AnnualRent    int64   `protobuf:"varint,4,opt,name=annual_rent,json=annualRent,proto3" json:"annual_rent,omitempty"`
	TermYears     int32   `protobuf:"varint,5,opt,name=term_years,json=termYears,proto3" json:"term_years,omitempty"`
	Escalator     float64 `protobuf:"fixed64,6,opt,name=escalator,proto3" json:"escalator,omitempty"`
	RiskTier      string  `protobuf:"bytes,7,opt,name=risk_tier,json=riskTier,proto3" json:"risk_tier,omitempty"`
	Location      string  `protobuf:"bytes,8,opt,name=location,proto3" json:"location,omitempty"`
	Acres         float64 `protobuf:"fixed64,9,opt,name=acres,proto3" json:"acres,omitempty"`
	Developer     string  `protobuf:"bytes,10,opt,name=developer,proto3" json:"developer,omitempty"`
	Landowners    string  `protobuf:"bytes,11,opt,name=landowners,proto3" json:"landowners,omitempty"`
	NeedsReview   bool    `protobuf:"varint,12,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	CreatedAt     string  `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string  `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Lease) Reset() {
	*x = Lease{}
	mi := &file_leases_v1_leases_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lease) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lease) ProtoMessage() {}

func (x *Lease) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lease.ProtoReflect.Descriptor instead.
func (*Lease) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{1}
}

func (x *Lease) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Lease) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *Lease) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Lease) GetAnnualRent() int64 {
	if x != nil {
		return x.AnnualRent
	}
	return 0
}

func (x *Lease) GetTermYears() int32 {
	if x != nil {
		return x.TermYears
	}
	return 0
}

func (x *Lease) GetEscalator() float64 {
	if x != nil {
		return x.Escalator
	}
	return 0
}

func (x *Lease) GetRiskTier() string {
	if x != nil {
		return x.RiskTier
	}
	return ""
}

func (x *Lease) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Lease) GetAcres() float64 {
	if x != nil {
		return x.Acres
	}
	return 0
}

func (x *Lease) GetDeveloper() string {
	if x != nil {
		return x.Developer
	}
	return ""
}

func (x *Lease) GetLandowners() string {
	if x != nil {
		return x.Landowners
	}
	return ""
}

func (x *Lease) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Lease) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Lease) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreatePortfolioRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Region        string                 `protobuf:"bytes,2,opt,name=region,proto3" json:"region,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePortfolioRequest) Reset() {
	*x = CreatePortfolioRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePortfolioRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePortfolioRequest) ProtoMessage() {}

func (x *CreatePortfolioRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePortfolioRequest.ProtoReflect.Descriptor instead.
func (*CreatePortfolioRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePortfolioRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreatePortfolioRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *CreatePortfolioRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreatePortfolioResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Portfolio     *Portfolio             `protobuf:"bytes,1,opt,name=portfolio,proto3" json:"portfolio,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePortfolioResponse) Reset() {
	*x = CreatePortfolioResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePortfolioResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePortfolioResponse) ProtoMessage() {}

func (x *CreatePortfolioResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePortfolioResponse.ProtoReflect.Descriptor instead.
func (*CreatePortfolioResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{3}
}

func (x *CreatePortfolioResponse) GetPortfolio() *Portfolio {
	if x != nil {
		return x.Portfolio
	}
	return nil
}

type ListPortfoliosRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPortfoliosRequest) Reset() {
	*x = ListPortfoliosRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPortfoliosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPortfoliosRequest) ProtoMessage() {}

func (x *ListPortfoliosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPortfoliosRequest.ProtoReflect.Descriptor instead.
func (*ListPortfoliosRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{4}
}

type ListPortfoliosResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Portfolios    []*Portfolio           `protobuf:"bytes,1,rep,name=portfolios,proto3" json:"portfolios,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPortfoliosResponse) Reset() {
	*x = ListPortfoliosResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPortfoliosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPortfoliosResponse) ProtoMessage() {}

func (x *ListPortfoliosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPortfoliosResponse.ProtoReflect.Descriptor instead.
func (*ListPortfoliosResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{5}
}

func (x *ListPortfoliosResponse) GetPortfolios() []*Portfolio {
	if x != nil {
		return x.Portfolios
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PortfolioId   string                 `protobuf:"bytes,1,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{6}
}

func (x *IngestFileRequest) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{7}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PortfolioId   string                 `protobuf:"bytes,1,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryRequest) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{9}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ProcessFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFileRequest) Reset() {
	*x = ProcessFileRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFileRequest) ProtoMessage() {}

func (x *ProcessFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFileRequest.ProtoReflect.Descriptor instead.
func (*ProcessFileRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{10}
}

func (x *ProcessFileRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ProcessFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	LeaseId       string                 `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFileResponse) Reset() {
	*x = ProcessFileResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFileResponse) ProtoMessage() {}

func (x *ProcessFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFileResponse.ProtoReflect.Descriptor instead.
func (*ProcessFileResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessFileResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessFileResponse) GetLeaseId() string {
	if x != nil {
		return x.LeaseId
	}
	return ""
}

func (x *ProcessFileResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListLeasesRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	PortfolioId string                 `protobuf:"bytes,1,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	// "low" | "medium" | "high"; empty for all
	RiskTier        string `protobuf:"bytes,2,opt,name=risk_tier,json=riskTier,proto3" json:"risk_tier,omitempty"`
	NeedsReviewOnly bool   `protobuf:"varint,3,opt,name=needs_review_only,json=needsReviewOnly,proto3" json:"needs_review_only,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListLeasesRequest) Reset() {
	*x = ListLeasesRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLeasesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLeasesRequest) ProtoMessage() {}

func (x *ListLeasesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLeasesRequest.ProtoReflect.Descriptor instead.
func (*ListLeasesRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{12}
}

func (x *ListLeasesRequest) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *ListLeasesRequest) GetRiskTier() string {
	if x != nil {
		return x.RiskTier
	}
	return ""
}

func (x *ListLeasesRequest) GetNeedsReviewOnly() bool {
	if x != nil {
		return x.NeedsReviewOnly
	}
	return false
}

type ListLeasesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Leases        []*Lease               `protobuf:"bytes,1,rep,name=leases,proto3" json:"leases,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLeasesResponse) Reset() {
	*x = ListLeasesResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLeasesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLeasesResponse) ProtoMessage() {}

func (x *ListLeasesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLeasesResponse.ProtoReflect.Descriptor instead.
func (*ListLeasesResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{13}
}

func (x *ListLeasesResponse) GetLeases() []*Lease {
	if x != nil {
		return x.Leases
	}
	return nil
}

type ExportLeasesRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	PortfolioId     string                 `protobuf:"bytes,1,opt,name=portfolio_id,json=portfolioId,proto3" json:"portfolio_id,omitempty"`
	RiskTier        string                 `protobuf:"bytes,2,opt,name=risk_tier,json=riskTier,proto3" json:"risk_tier,omitempty"`
	NeedsReviewOnly bool                   `protobuf:"varint,3,opt,name=needs_review_only,json=needsReviewOnly,proto3" json:"needs_review_only,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExportLeasesRequest) Reset() {
	*x = ExportLeasesRequest{}
	mi := &file_leases_v1_leases_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLeasesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLeasesRequest) ProtoMessage() {}

func (x *ExportLeasesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLeasesRequest.ProtoReflect.Descriptor instead.
func (*ExportLeasesRequest) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{14}
}

func (x *ExportLeasesRequest) GetPortfolioId() string {
	if x != nil {
		return x.PortfolioId
	}
	return ""
}

func (x *ExportLeasesRequest) GetRiskTier() string {
	if x != nil {
		return x.RiskTier
	}
	return ""
}

func (x *ExportLeasesRequest) GetNeedsReviewOnly() bool {
	if x != nil {
		return x.NeedsReviewOnly
	}
	return false
}

type ExportLeasesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLeasesResponse) Reset() {
	*x = ExportLeasesResponse{}
	mi := &file_leases_v1_leases_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLeasesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLeasesResponse) ProtoMessage() {}

func (x *ExportLeasesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_leases_v1_leases_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLeasesResponse.ProtoReflect.Descriptor instead.
func (*ExportLeasesResponse) Descriptor() ([]byte, []int) {
	return file_leases_v1_leases_proto_rawDescGZIP(), []int{15}
}

func (x *ExportLeasesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_leases_v1_leases_proto protoreflect.FileDescriptor

const file_leases_v1_leases_proto_rawDesc = "" +
	"\n" +
	"\x16leases/v1/leases.proto\x12\tleases.v1\"\xa7\x01\n" +
	"\tPortfolio\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\x9a\x03\n" +
	"\x05Lease\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fportfolio_id\x18\x02 \x01(\tR\vportfolioId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1f\n" +
	"\vannual_rent\x18\x04 \x01(\x03R\n" +
	"annualRent\x12\x1d\n" +
	"\n" +
	"term_years\x18\x05 \x01(\x05R\ttermYears\x12\x1c\n" +
	"\tescalator\x18\x06 \x01(\x01R\tescalator\x12\x1b\n" +
	"\trisk_tier\x18\a \x01(\tR\briskTier\x12\x1a\n" +
	"\blocation\x18\b \x01(\tR\blocation\x12\x14\n" +
	"\x05acres\x18\t \x01(\x01R\x05acres\x12\x1c\n" +
	"\tdeveloper\x18\n" +
	" \x01(\tR\tdeveloper\x12\x1e\n" +
	"\n" +
	"landowners\x18\v \x01(\tR\n" +
	"landowners\x12!\n" +
	"\fneeds_review\x18\f \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"f\n" +
	"\x16CreatePortfolioRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06region\x18\x02 \x01(\tR\x06region\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"M\n" +
	"\x17CreatePortfolioResponse\x122\n" +
	"\tportfolio\x18\x01 \x01(\v2\x14.leases.v1.PortfolioR\tportfolio\"\x17\n" +
	"\x15ListPortfoliosRequest\"N\n" +
	"\x16ListPortfoliosResponse\x124\n" +
	"\n" +
	"portfolios\x18\x01 \x03(\v2\x14.leases.v1.PortfolioR\n" +
	"portfolios\"J\n" +
	"\x11IngestFileRequest\x12!\n" +
	"\fportfolio_id\x18\x01 \x01(\tR\vportfolioId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"y\n" +
	"\x16IngestDirectoryRequest\x12!\n" +
	"\fportfolio_id\x18\x01 \x01(\tR\vportfolioId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xdc\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x123\n" +
	"\aresults\x18\x06 \x03(\v2\x19.leases.v1.IngestResponseR\aresults\"-\n" +
	"\x12ProcessFileRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"_\n" +
	"\x13ProcessFileResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\blease_id\x18\x02 \x01(\tR\aleaseId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"\x7f\n" +
	"\x11ListLeasesRequest\x12!\n" +
	"\fportfolio_id\x18\x01 \x01(\tR\vportfolioId\x12\x1b\n" +
	"\trisk_tier\x18\x02 \x01(\tR\briskTier\x12*\n" +
	"\x11needs_review_only\x18\x03 \x01(\bR\x0fneedsReviewOnly\">\n" +
	"\x12ListLeasesResponse\x12(\n" +
	"\x06leases\x18\x01 \x03(\v2\x10.leases.v1.LeaseR\x06leases\"\x81\x01\n" +
	"\x13ExportLeasesRequest\x12!\n" +
	"\fportfolio_id\x18\x01 \x01(\tR\vportfolioId\x12\x1b\n" +
	"\trisk_tier\x18\x02 \x01(\tR\briskTier\x12*\n" +
	"\x11needs_review_only\x18\x03 \x01(\bR\x0fneedsReviewOnly\"*\n" +
	"\x14ExportLeasesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xcb\x04\n" +
	"\rLeasesService\x12X\n" +
	"\x0fCreatePortfolio\x12!.leases.v1.CreatePortfolioRequest\x1a\".leases.v1.CreatePortfolioResponse\x12U\n" +
	"\x0eListPortfolios\x12 .leases.v1.ListPortfoliosRequest\x1a!.leases.v1.ListPortfoliosResponse\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.leases.v1.IngestFileRequest\x1a\x19.leases.v1.IngestResponse\x12X\n" +
	"\x0fIngestDirectory\x12!.leases.v1.IngestDirectoryRequest\x1a\".leases.v1.IngestDirectoryResponse\x12L\n" +
	"\vProcessFile\x12\x1d.leases.v1.ProcessFileRequest\x1a\x1e.leases.v1.ProcessFileResponse\x12I\n" +
	"\n" +
	"ListLeases\x12\x1c.leases.v1.ListLeasesRequest\x1a\x1d.leases.v1.ListLeasesResponse\x12O\n" +
	"\fExportLeases\x12\x1e.leases.v1.ExportLeasesRequest\x1a\x1f.leases.v1.ExportLeasesResponseBDZBgithub.com/solargrid-io/lease-tracker/gen/proto/leases/v1;leasesv1b\x06proto3"

var (
	file_leases_v1_leases_proto_rawDescOnce sync.Once
	file_leases_v1_leases_proto_rawDescData []byte
)

func file_leases_v1_leases_proto_rawDescGZIP() []byte {
	file_leases_v1_leases_proto_rawDescOnce.Do(func() {
		file_leases_v1_leases_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_leases_v1_leases_proto_rawDesc), len(file_leases_v1_leases_proto_rawDesc)))
	})
	return file_leases_v1_leases_proto_rawDescData
}

var file_leases_v1_leases_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_leases_v1_leases_proto_goTypes = []any{
	(*Portfolio)(nil),               // 0: leases.v1.Portfolio
	(*Lease)(nil),                   // 1: leases.v1.Lease
	(*CreatePortfolioRequest)(nil),  // 2: leases.v1.CreatePortfolioRequest
	(*CreatePortfolioResponse)(nil), // 3: leases.v1.CreatePortfolioResponse
	(*ListPortfoliosRequest)(nil),   // 4: leases.v1.ListPortfoliosRequest
	(*ListPortfoliosResponse)(nil),  // 5: leases.v1.ListPortfoliosResponse
	(*IngestFileRequest)(nil),       // 6: leases.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 7: leases.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 8: leases.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 9: leases.v1.IngestDirectoryResponse
	(*ProcessFileRequest)(nil),      // 10: leases.v1.ProcessFileRequest
	(*ProcessFileResponse)(nil),     // 11: leases.v1.ProcessFileResponse
	(*ListLeasesRequest)(nil),       // 12: leases.v1.ListLeasesRequest
	(*ListLeasesResponse)(nil),      // 13: leases.v1.ListLeasesResponse
	(*ExportLeasesRequest)(nil),     // 14: leases.v1.ExportLeasesRequest
	(*ExportLeasesResponse)(nil),    // 15: leases.v1.ExportLeasesResponse
}
var file_leases_v1_leases_proto_depIdxs = []int32{
	0,  // 0: leases.v1.CreatePortfolioResponse.portfolio:type_name -> leases.v1.Portfolio
	0,  // 1: leases.v1.ListPortfoliosResponse.portfolios:type_name -> leases.v1.Portfolio
	7,  // 2: leases.v1.IngestDirectoryResponse.results:type_name -> leases.v1.IngestResponse
	1,  // 3: leases.v1.ListLeasesResponse.leases:type_name -> leases.v1.Lease
	2,  // 4: leases.v1.LeasesService.CreatePortfolio:input_type -> leases.v1.CreatePortfolioRequest
	4,  // 5: leases.v1.LeasesService.ListPortfolios:input_type -> leases.v1.ListPortfoliosRequest
	6,  // 6: leases.v1.LeasesService.IngestFile:input_type -> leases.v1.IngestFileRequest
	8,  // 7: leases.v1.LeasesService.IngestDirectory:input_type -> leases.v1.IngestDirectoryRequest
	10, // 8: leases.v1.LeasesService.ProcessFile:input_type -> leases.v1.ProcessFileRequest
	12, // 9: leases.v1.LeasesService.ListLeases:input_type -> leases.v1.ListLeasesRequest
	14, // 10: leases.v1.LeasesService.ExportLeases:input_type -> leases.v1.ExportLeasesRequest
	3,  // 11: leases.v1.LeasesService.CreatePortfolio:output_type -> leases.v1.CreatePortfolioResponse
	5,  // 12: leases.v1.LeasesService.ListPortfolios:output_type -> leases.v1.ListPortfoliosResponse
	7,  // 13: leases.v1.LeasesService.IngestFile:output_type -> leases.v1.IngestResponse
	9,  // 14: leases.v1.LeasesService.IngestDirectory:output_type -> leases.v1.IngestDirectoryResponse
	11, // 15: leases.v1.LeasesService.ProcessFile:output_type -> leases.v1.ProcessFileResponse
	13, // 16: leases.v1.LeasesService.ListLeases:output_type -> leases.v1.ListLeasesResponse
	15, // 17: leases.v1.LeasesService.ExportLeases:output_type -> leases.v1.ExportLeasesResponse
	11, // [11:18] is the sub-list for method output_type
	4,  // [4:11] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_leases_v1_leases_proto_init() }
func file_leases_v1_leases_proto_init() {
	if File_leases_v1_leases_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_leases_v1_leases_proto_rawDesc), len(file_leases_v1_leases_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_leases_v1_leases_proto_goTypes,
		DependencyIndexes: file_leases_v1_leases_proto_depIdxs,
		MessageInfos:      file_leases_v1_leases_proto_msgTypes,
	}.Build()
	File_leases_v1_leases_proto = out.File
	file_leases_v1_leases_proto_goTypes = nil
	file_leases_v1_leases_proto_depIdxs = nil
}
