// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.1
// 	protoc        (unknown)
// source: api/proto/payments/v1/payment.proto

package paymentv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Currency int32

const (
	Currency_CURRENCY_UNSPECIFIED Currency = 0
	Currency_USD                  Currency = 1
	Currency_EUR                  Currency = 2
	Currency_GBP                  Currency = 3
	Currency_INR                  Currency = 4
)

// Enum value maps for Currency.
var (
	Currency_name = map[int32]string{
		0: "CURRENCY_UNSPECIFIED",
		1: "USD",
		2: "EUR",
		3: "GBP",
		4: "INR",
	}
	Currency_value = map[string]int32{
		"CURRENCY_UNSPECIFIED": 0,
		"USD":                  1,
		"EUR":                  2,
		"GBP":                  3,
		"INR":                  4,
	}
)

func (x Currency) Enum() *Currency {
	p := new(Currency)
	*p = x
	return p
}

func (x Currency) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Currency) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_payments_v1_payment_proto_enumTypes[0].Descriptor()
}

func (Currency) Type() protoreflect.EnumType {
	return &file_api_proto_payments_v1_payment_proto_enumTypes[0]
}

func (x Currency) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Currency.Descriptor instead.
func (Currency) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{0}
}

type Connector int32

const (
	Connector_CONNECTOR_UNSPECIFIED Connector = 0
	Connector_STRIPE                Connector = 1
	Connector_RAZORPAY              Connector = 2
	Connector_ADYEN                 Connector = 3
)

// Enum value maps for Connector.
var (
	Connector_name = map[int32]string{
		0: "CONNECTOR_UNSPECIFIED",
		1: "STRIPE",
		2: "RAZORPAY",
		3: "ADYEN",
	}
	Connector_value = map[string]int32{
		"CONNECTOR_UNSPECIFIED": 0,
		"STRIPE":                1,
		"RAZORPAY":              2,
		"ADYEN":                 3,
	}
)

func (x Connector) Enum() *Connector {
	p := new(Connector)
	*p = x
	return p
}

func (x Connector) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Connector) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_payments_v1_payment_proto_enumTypes[1].Descriptor()
}

func (Connector) Type() protoreflect.EnumType {
	return &file_api_proto_payments_v1_payment_proto_enumTypes[1]
}

func (x Connector) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Connector.Descriptor instead.
func (Connector) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{1}
}

type PaymentMethod int32

const (
	PaymentMethod_PAYMENT_METHOD_UNSPECIFIED PaymentMethod = 0
	PaymentMethod_CARD                       PaymentMethod = 1
)

// Enum value maps for PaymentMethod.
var (
	PaymentMethod_name = map[int32]string{
		0: "PAYMENT_METHOD_UNSPECIFIED",
		1: "CARD",
	}
	PaymentMethod_value = map[string]int32{
		"PAYMENT_METHOD_UNSPECIFIED": 0,
		"CARD":                       1,
	}
)

func (x PaymentMethod) Enum() *PaymentMethod {
	p := new(PaymentMethod)
	*p = x
	return p
}

func (x PaymentMethod) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PaymentMethod) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_payments_v1_payment_proto_enumTypes[2].Descriptor()
}

func (PaymentMethod) Type() protoreflect.EnumType {
	return &file_api_proto_payments_v1_payment_proto_enumTypes[2]
}

func (x PaymentMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PaymentMethod.Descriptor instead.
func (PaymentMethod) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{2}
}

type AuthenticationType int32

const (
	AuthenticationType_AUTHENTICATION_TYPE_UNSPECIFIED AuthenticationType = 0
	AuthenticationType_THREE_DS                        AuthenticationType = 1
	AuthenticationType_NO_THREE_DS                     AuthenticationType = 2
)

// Enum value maps for AuthenticationType.
var (
	AuthenticationType_name = map[int32]string{
		0: "AUTHENTICATION_TYPE_UNSPECIFIED",
		1: "THREE_DS",
		2: "NO_THREE_DS",
	}
	AuthenticationType_value = map[string]int32{
		"AUTHENTICATION_TYPE_UNSPECIFIED": 0,
		"THREE_DS":                        1,
		"NO_THREE_DS":                     2,
	}
)

func (x AuthenticationType) Enum() *AuthenticationType {
	p := new(AuthenticationType)
	*p = x
	return p
}

func (x AuthenticationType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AuthenticationType) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_payments_v1_payment_proto_enumTypes[3].Descriptor()
}

func (AuthenticationType) Type() protoreflect.EnumType {
	return &file_api_proto_payments_v1_payment_proto_enumTypes[3]
}

func (x AuthenticationType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AuthenticationType.Descriptor instead.
func (AuthenticationType) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{3}
}

// PaymentStatus values mirror the server's attempt-status enumeration.
// New statuses may appear server-side ahead of this contract; clients must
// tolerate values outside this list.
type PaymentStatus int32

const (
	PaymentStatus_PAYMENT_STATUS_UNSPECIFIED PaymentStatus = 0
	PaymentStatus_STARTED                    PaymentStatus = 1
	PaymentStatus_PENDING                    PaymentStatus = 2
	PaymentStatus_AUTHENTICATION_PENDING     PaymentStatus = 3
	PaymentStatus_AUTHORIZED                 PaymentStatus = 4
	PaymentStatus_AUTHORIZATION_FAILED       PaymentStatus = 5
	PaymentStatus_FAILURE                    PaymentStatus = 6
	PaymentStatus_CHARGED                    PaymentStatus = 7
	PaymentStatus_VOIDED                     PaymentStatus = 8
)

// Enum value maps for PaymentStatus.
var (
	PaymentStatus_name = map[int32]string{
		0: "PAYMENT_STATUS_UNSPECIFIED",
		1: "STARTED",
		2: "PENDING",
		3: "AUTHENTICATION_PENDING",
		4: "AUTHORIZED",
		5: "AUTHORIZATION_FAILED",
		6: "FAILURE",
		7: "CHARGED",
		8: "VOIDED",
	}
	PaymentStatus_value = map[string]int32{
		"PAYMENT_STATUS_UNSPECIFIED": 0,
		"STARTED":                    1,
		"PENDING":                    2,
		"AUTHENTICATION_PENDING":     3,
		"AUTHORIZED":                 4,
		"AUTHORIZATION_FAILED":       5,
		"FAILURE":                    6,
		"CHARGED":                    7,
		"VOIDED":                     8,
	}
)

func (x PaymentStatus) Enum() *PaymentStatus {
	p := new(PaymentStatus)
	*p = x
	return p
}

func (x PaymentStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PaymentStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_payments_v1_payment_proto_enumTypes[4].Descriptor()
}

func (PaymentStatus) Type() protoreflect.EnumType {
	return &file_api_proto_payments_v1_payment_proto_enumTypes[4]
}

func (x PaymentStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PaymentStatus.Descriptor instead.
func (PaymentStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{4}
}

type Card struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CardNumber     string `protobuf:"bytes,1,opt,name=card_number,json=cardNumber,proto3" json:"card_number,omitempty"`
	CardExpMonth   string `protobuf:"bytes,2,opt,name=card_exp_month,json=cardExpMonth,proto3" json:"card_exp_month,omitempty"`
	CardExpYear    string `protobuf:"bytes,3,opt,name=card_exp_year,json=cardExpYear,proto3" json:"card_exp_year,omitempty"`
	CardCvc        string `protobuf:"bytes,4,opt,name=card_cvc,json=cardCvc,proto3" json:"card_cvc,omitempty"`
	CardHolderName string `protobuf:"bytes,5,opt,name=card_holder_name,json=cardHolderName,proto3" json:"card_holder_name,omitempty"`
}

func (x *Card) Reset() {
	*x = Card{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Card) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Card) ProtoMessage() {}

func (x *Card) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Card.ProtoReflect.Descriptor instead.
func (*Card) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{0}
}

func (x *Card) GetCardNumber() string {
	if x != nil {
		return x.CardNumber
	}
	return ""
}

func (x *Card) GetCardExpMonth() string {
	if x != nil {
		return x.CardExpMonth
	}
	return ""
}

func (x *Card) GetCardExpYear() string {
	if x != nil {
		return x.CardExpYear
	}
	return ""
}

func (x *Card) GetCardCvc() string {
	if x != nil {
		return x.CardCvc
	}
	return ""
}

func (x *Card) GetCardHolderName() string {
	if x != nil {
		return x.CardHolderName
	}
	return ""
}

type PaymentMethodData struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Card *Card `protobuf:"bytes,1,opt,name=card,proto3" json:"card,omitempty"`
}

func (x *PaymentMethodData) Reset() {
	*x = PaymentMethodData{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentMethodData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentMethodData) ProtoMessage() {}

func (x *PaymentMethodData) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentMethodData.ProtoReflect.Descriptor instead.
func (*PaymentMethodData) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{1}
}

func (x *PaymentMethodData) GetCard() *Card {
	if x != nil {
		return x.Card
	}
	return nil
}

type Address struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Line1   string `protobuf:"bytes,1,opt,name=line1,proto3" json:"line1,omitempty"`
	Line2   string `protobuf:"bytes,2,opt,name=line2,proto3" json:"line2,omitempty"`
	City    string `protobuf:"bytes,3,opt,name=city,proto3" json:"city,omitempty"`
	State   string `protobuf:"bytes,4,opt,name=state,proto3" json:"state,omitempty"`
	Zip     string `protobuf:"bytes,5,opt,name=zip,proto3" json:"zip,omitempty"`
	Country string `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
}

func (x *Address) Reset() {
	*x = Address{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Address) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Address) ProtoMessage() {}

func (x *Address) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Address.ProtoReflect.Descriptor instead.
func (*Address) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{2}
}

func (x *Address) GetLine1() string {
	if x != nil {
		return x.Line1
	}
	return ""
}

func (x *Address) GetLine2() string {
	if x != nil {
		return x.Line2
	}
	return ""
}

func (x *Address) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Address) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Address) GetZip() string {
	if x != nil {
		return x.Zip
	}
	return ""
}

func (x *Address) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

type PaymentAddress struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Billing  *Address `protobuf:"bytes,1,opt,name=billing,proto3" json:"billing,omitempty"`
	Shipping *Address `protobuf:"bytes,2,opt,name=shipping,proto3" json:"shipping,omitempty"`
}

func (x *PaymentAddress) Reset() {
	*x = PaymentAddress{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentAddress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentAddress) ProtoMessage() {}

func (x *PaymentAddress) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentAddress.ProtoReflect.Descriptor instead.
func (*PaymentAddress) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{3}
}

func (x *PaymentAddress) GetBilling() *Address {
	if x != nil {
		return x.Billing
	}
	return nil
}

func (x *PaymentAddress) GetShipping() *Address {
	if x != nil {
		return x.Shipping
	}
	return nil
}

type HeaderKey struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ApiKey string `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
}

func (x *HeaderKey) Reset() {
	*x = HeaderKey{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HeaderKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeaderKey) ProtoMessage() {}

func (x *HeaderKey) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeaderKey.ProtoReflect.Descriptor instead.
func (*HeaderKey) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{4}
}

func (x *HeaderKey) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

type BodyKey struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ApiKey string `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	Key1   string `protobuf:"bytes,2,opt,name=key1,proto3" json:"key1,omitempty"`
}

func (x *BodyKey) Reset() {
	*x = BodyKey{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BodyKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BodyKey) ProtoMessage() {}

func (x *BodyKey) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BodyKey.ProtoReflect.Descriptor instead.
func (*BodyKey) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{5}
}

func (x *BodyKey) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

func (x *BodyKey) GetKey1() string {
	if x != nil {
		return x.Key1
	}
	return ""
}

type SignatureKey struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ApiKey    string `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	Key1      string `protobuf:"bytes,2,opt,name=key1,proto3" json:"key1,omitempty"`
	ApiSecret string `protobuf:"bytes,3,opt,name=api_secret,json=apiSecret,proto3" json:"api_secret,omitempty"`
}

func (x *SignatureKey) Reset() {
	*x = SignatureKey{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SignatureKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignatureKey) ProtoMessage() {}

func (x *SignatureKey) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignatureKey.ProtoReflect.Descriptor instead.
func (*SignatureKey) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{6}
}

func (x *SignatureKey) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

func (x *SignatureKey) GetKey1() string {
	if x != nil {
		return x.Key1
	}
	return ""
}

func (x *SignatureKey) GetApiSecret() string {
	if x != nil {
		return x.ApiSecret
	}
	return ""
}

type AuthType struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Types that are assignable to AuthType:
	//
	//	*AuthType_HeaderKey
	//	*AuthType_BodyKey
	//	*AuthType_SignatureKey
	AuthType isAuthType_AuthType `protobuf_oneof:"auth_type"`
}

func (x *AuthType) Reset() {
	*x = AuthType{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AuthType) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthType) ProtoMessage() {}

func (x *AuthType) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthType.ProtoReflect.Descriptor instead.
func (*AuthType) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{7}
}

func (m *AuthType) GetAuthType() isAuthType_AuthType {
	if m != nil {
		return m.AuthType
	}
	return nil
}

func (x *AuthType) GetHeaderKey() *HeaderKey {
	if x, ok := x.GetAuthType().(*AuthType_HeaderKey); ok {
		return x.HeaderKey
	}
	return nil
}

func (x *AuthType) GetBodyKey() *BodyKey {
	if x, ok := x.GetAuthType().(*AuthType_BodyKey); ok {
		return x.BodyKey
	}
	return nil
}

func (x *AuthType) GetSignatureKey() *SignatureKey {
	if x, ok := x.GetAuthType().(*AuthType_SignatureKey); ok {
		return x.SignatureKey
	}
	return nil
}

type isAuthType_AuthType interface {
	isAuthType_AuthType()
}

type AuthType_HeaderKey struct {
	HeaderKey *HeaderKey `protobuf:"bytes,1,opt,name=header_key,json=headerKey,proto3,oneof"`
}

type AuthType_BodyKey struct {
	BodyKey *BodyKey `protobuf:"bytes,2,opt,name=body_key,json=bodyKey,proto3,oneof"`
}

type AuthType_SignatureKey struct {
	SignatureKey *SignatureKey `protobuf:"bytes,3,opt,name=signature_key,json=signatureKey,proto3,oneof"`
}

func (*AuthType_HeaderKey) isAuthType_AuthType() {}

func (*AuthType_BodyKey) isAuthType_AuthType() {}

func (*AuthType_SignatureKey) isAuthType_AuthType() {}

type BrowserInformation struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserAgent    string `protobuf:"bytes,1,opt,name=user_agent,json=userAgent,proto3" json:"user_agent,omitempty"`
	AcceptHeader string `protobuf:"bytes,2,opt,name=accept_header,json=acceptHeader,proto3" json:"accept_header,omitempty"`
	Language     string `protobuf:"bytes,3,opt,name=language,proto3" json:"language,omitempty"`
	ColorDepth   uint32 `protobuf:"varint,4,opt,name=color_depth,json=colorDepth,proto3" json:"color_depth,omitempty"`
	ScreenHeight uint32 `protobuf:"varint,5,opt,name=screen_height,json=screenHeight,proto3" json:"screen_height,omitempty"`
	ScreenWidth  uint32 `protobuf:"varint,6,opt,name=screen_width,json=screenWidth,proto3" json:"screen_width,omitempty"`
	JavaEnabled  bool   `protobuf:"varint,7,opt,name=java_enabled,json=javaEnabled,proto3" json:"java_enabled,omitempty"`
	IpAddress    string `protobuf:"bytes,8,opt,name=ip_address,json=ipAddress,proto3" json:"ip_address,omitempty"`
}

func (x *BrowserInformation) Reset() {
	*x = BrowserInformation{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BrowserInformation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BrowserInformation) ProtoMessage() {}

func (x *BrowserInformation) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BrowserInformation.ProtoReflect.Descriptor instead.
func (*BrowserInformation) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{8}
}

func (x *BrowserInformation) GetUserAgent() string {
	if x != nil {
		return x.UserAgent
	}
	return ""
}

func (x *BrowserInformation) GetAcceptHeader() string {
	if x != nil {
		return x.AcceptHeader
	}
	return ""
}

func (x *BrowserInformation) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *BrowserInformation) GetColorDepth() uint32 {
	if x != nil {
		return x.ColorDepth
	}
	return 0
}

func (x *BrowserInformation) GetScreenHeight() uint32 {
	if x != nil {
		return x.ScreenHeight
	}
	return 0
}

func (x *BrowserInformation) GetScreenWidth() uint32 {
	if x != nil {
		return x.ScreenWidth
	}
	return 0
}

func (x *BrowserInformation) GetJavaEnabled() bool {
	if x != nil {
		return x.JavaEnabled
	}
	return false
}

func (x *BrowserInformation) GetIpAddress() string {
	if x != nil {
		return x.IpAddress
	}
	return ""
}

type ResourceId struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Types that are assignable to Id:
	//
	//	*ResourceId_ConnectorTransactionId
	//	*ResourceId_EncodedData
	//	*ResourceId_NoResponseId
	Id isResourceId_Id `protobuf_oneof:"id"`
}

func (x *ResourceId) Reset() {
	*x = ResourceId{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ResourceId) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResourceId) ProtoMessage() {}

func (x *ResourceId) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResourceId.ProtoReflect.Descriptor instead.
func (*ResourceId) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{9}
}

func (m *ResourceId) GetId() isResourceId_Id {
	if m != nil {
		return m.Id
	}
	return nil
}

func (x *ResourceId) GetConnectorTransactionId() string {
	if x, ok := x.GetId().(*ResourceId_ConnectorTransactionId); ok {
		return x.ConnectorTransactionId
	}
	return ""
}

func (x *ResourceId) GetEncodedData() string {
	if x, ok := x.GetId().(*ResourceId_EncodedData); ok {
		return x.EncodedData
	}
	return ""
}

func (x *ResourceId) GetNoResponseId() bool {
	if x, ok := x.GetId().(*ResourceId_NoResponseId); ok {
		return x.NoResponseId
	}
	return false
}

type isResourceId_Id interface {
	isResourceId_Id()
}

type ResourceId_ConnectorTransactionId struct {
	ConnectorTransactionId string `protobuf:"bytes,1,opt,name=connector_transaction_id,json=connectorTransactionId,proto3,oneof"`
}

type ResourceId_EncodedData struct {
	EncodedData string `protobuf:"bytes,2,opt,name=encoded_data,json=encodedData,proto3,oneof"`
}

type ResourceId_NoResponseId struct {
	NoResponseId bool `protobuf:"varint,3,opt,name=no_response_id,json=noResponseId,proto3,oneof"`
}

func (*ResourceId_ConnectorTransactionId) isResourceId_Id() {}

func (*ResourceId_EncodedData) isResourceId_Id() {}

func (*ResourceId_NoResponseId) isResourceId_Id() {}

type RedirectForm struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Endpoint   string            `protobuf:"bytes,1,opt,name=endpoint,proto3" json:"endpoint,omitempty"`
	Method     string            `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	FormFields map[string]string `protobuf:"bytes,3,rep,name=form_fields,json=formFields,proto3" json:"form_fields,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (x *RedirectForm) Reset() {
	*x = RedirectForm{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RedirectForm) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedirectForm) ProtoMessage() {}

func (x *RedirectForm) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedirectForm.ProtoReflect.Descriptor instead.
func (*RedirectForm) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{10}
}

func (x *RedirectForm) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *RedirectForm) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *RedirectForm) GetFormFields() map[string]string {
	if x != nil {
		return x.FormFields
	}
	return nil
}

type RedirectionData struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Form *RedirectForm `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
}

func (x *RedirectionData) Reset() {
	*x = RedirectionData{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RedirectionData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedirectionData) ProtoMessage() {}

func (x *RedirectionData) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedirectionData.ProtoReflect.Descriptor instead.
func (*RedirectionData) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{11}
}

func (x *RedirectionData) GetForm() *RedirectForm {
	if x != nil {
		return x.Form
	}
	return nil
}

type PaymentsAuthorizeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Amount                          int64               `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency                        Currency            `protobuf:"varint,2,opt,name=currency,proto3,enum=payments.v1.Currency" json:"currency,omitempty"`
	Connector                       Connector           `protobuf:"varint,3,opt,name=connector,proto3,enum=payments.v1.Connector" json:"connector,omitempty"`
	AuthCreds                       *AuthType           `protobuf:"bytes,4,opt,name=auth_creds,json=authCreds,proto3" json:"auth_creds,omitempty"`
	PaymentMethod                   PaymentMethod       `protobuf:"varint,5,opt,name=payment_method,json=paymentMethod,proto3,enum=payments.v1.PaymentMethod" json:"payment_method,omitempty"`
	PaymentMethodData               *PaymentMethodData  `protobuf:"bytes,6,opt,name=payment_method_data,json=paymentMethodData,proto3" json:"payment_method_data,omitempty"`
	Address                         *PaymentAddress     `protobuf:"bytes,7,opt,name=address,proto3" json:"address,omitempty"`
	AuthType                        AuthenticationType  `protobuf:"varint,8,opt,name=auth_type,json=authType,proto3,enum=payments.v1.AuthenticationType" json:"auth_type,omitempty"`
	ConnectorRequestReferenceId     string              `protobuf:"bytes,9,opt,name=connector_request_reference_id,json=connectorRequestReferenceId,proto3" json:"connector_request_reference_id,omitempty"`
	EnrolledFor_3Ds                 bool                `protobuf:"varint,10,opt,name=enrolled_for_3ds,json=enrolledFor3ds,proto3" json:"enrolled_for_3ds,omitempty"`
	RequestIncrementalAuthorization bool                `protobuf:"varint,11,opt,name=request_incremental_authorization,json=requestIncrementalAuthorization,proto3" json:"request_incremental_authorization,omitempty"`
	MinorAmount                     int64               `protobuf:"varint,12,opt,name=minor_amount,json=minorAmount,proto3" json:"minor_amount,omitempty"`
	Email                           string              `protobuf:"bytes,13,opt,name=email,proto3" json:"email,omitempty"`
	BrowserInfo                     *BrowserInformation `protobuf:"bytes,14,opt,name=browser_info,json=browserInfo,proto3" json:"browser_info,omitempty"`
	ConnectorCustomer               string              `protobuf:"bytes,15,opt,name=connector_customer,json=connectorCustomer,proto3" json:"connector_customer,omitempty"`
	ReturnUrl                       string              `protobuf:"bytes,16,opt,name=return_url,json=returnUrl,proto3" json:"return_url,omitempty"`
}

func (x *PaymentsAuthorizeRequest) Reset() {
	*x = PaymentsAuthorizeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentsAuthorizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentsAuthorizeRequest) ProtoMessage() {}

func (x *PaymentsAuthorizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentsAuthorizeRequest.ProtoReflect.Descriptor instead.
func (*PaymentsAuthorizeRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{12}
}

func (x *PaymentsAuthorizeRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *PaymentsAuthorizeRequest) GetCurrency() Currency {
	if x != nil {
		return x.Currency
	}
	return Currency_CURRENCY_UNSPECIFIED
}

func (x *PaymentsAuthorizeRequest) GetConnector() Connector {
	if x != nil {
		return x.Connector
	}
	return Connector_CONNECTOR_UNSPECIFIED
}

func (x *PaymentsAuthorizeRequest) GetAuthCreds() *AuthType {
	if x != nil {
		return x.AuthCreds
	}
	return nil
}

func (x *PaymentsAuthorizeRequest) GetPaymentMethod() PaymentMethod {
	if x != nil {
		return x.PaymentMethod
	}
	return PaymentMethod_PAYMENT_METHOD_UNSPECIFIED
}

func (x *PaymentsAuthorizeRequest) GetPaymentMethodData() *PaymentMethodData {
	if x != nil {
		return x.PaymentMethodData
	}
	return nil
}

func (x *PaymentsAuthorizeRequest) GetAddress() *PaymentAddress {
	if x != nil {
		return x.Address
	}
	return nil
}

func (x *PaymentsAuthorizeRequest) GetAuthType() AuthenticationType {
	if x != nil {
		return x.AuthType
	}
	return AuthenticationType_AUTHENTICATION_TYPE_UNSPECIFIED
}

func (x *PaymentsAuthorizeRequest) GetConnectorRequestReferenceId() string {
	if x != nil {
		return x.ConnectorRequestReferenceId
	}
	return ""
}

func (x *PaymentsAuthorizeRequest) GetEnrolledFor_3Ds() bool {
	if x != nil {
		return x.EnrolledFor_3Ds
	}
	return false
}

func (x *PaymentsAuthorizeRequest) GetRequestIncrementalAuthorization() bool {
	if x != nil {
		return x.RequestIncrementalAuthorization
	}
	return false
}

func (x *PaymentsAuthorizeRequest) GetMinorAmount() int64 {
	if x != nil {
		return x.MinorAmount
	}
	return 0
}

func (x *PaymentsAuthorizeRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *PaymentsAuthorizeRequest) GetBrowserInfo() *BrowserInformation {
	if x != nil {
		return x.BrowserInfo
	}
	return nil
}

func (x *PaymentsAuthorizeRequest) GetConnectorCustomer() string {
	if x != nil {
		return x.ConnectorCustomer
	}
	return ""
}

func (x *PaymentsAuthorizeRequest) GetReturnUrl() string {
	if x != nil {
		return x.ReturnUrl
	}
	return ""
}

type PaymentsAuthorizeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status                       PaymentStatus    `protobuf:"varint,1,opt,name=status,proto3,enum=payments.v1.PaymentStatus" json:"status,omitempty"`
	ResourceId                   *ResourceId      `protobuf:"bytes,2,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	RedirectionData              *RedirectionData `protobuf:"bytes,3,opt,name=redirection_data,json=redirectionData,proto3" json:"redirection_data,omitempty"`
	ConnectorResponseReferenceId string           `protobuf:"bytes,4,opt,name=connector_response_reference_id,json=connectorResponseReferenceId,proto3" json:"connector_response_reference_id,omitempty"`
	ErrorCode                    string           `protobuf:"bytes,5,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage                 string           `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *PaymentsAuthorizeResponse) Reset() {
	*x = PaymentsAuthorizeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentsAuthorizeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentsAuthorizeResponse) ProtoMessage() {}

func (x *PaymentsAuthorizeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentsAuthorizeResponse.ProtoReflect.Descriptor instead.
func (*PaymentsAuthorizeResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{13}
}

func (x *PaymentsAuthorizeResponse) GetStatus() PaymentStatus {
	if x != nil {
		return x.Status
	}
	return PaymentStatus_PAYMENT_STATUS_UNSPECIFIED
}

func (x *PaymentsAuthorizeResponse) GetResourceId() *ResourceId {
	if x != nil {
		return x.ResourceId
	}
	return nil
}

func (x *PaymentsAuthorizeResponse) GetRedirectionData() *RedirectionData {
	if x != nil {
		return x.RedirectionData
	}
	return nil
}

func (x *PaymentsAuthorizeResponse) GetConnectorResponseReferenceId() string {
	if x != nil {
		return x.ConnectorResponseReferenceId
	}
	return ""
}

func (x *PaymentsAuthorizeResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *PaymentsAuthorizeResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type PaymentsSyncRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Connector                   Connector `protobuf:"varint,1,opt,name=connector,proto3,enum=payments.v1.Connector" json:"connector,omitempty"`
	AuthCreds                   *AuthType `protobuf:"bytes,2,opt,name=auth_creds,json=authCreds,proto3" json:"auth_creds,omitempty"`
	ResourceId                  string    `protobuf:"bytes,3,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	ConnectorRequestReferenceId string    `protobuf:"bytes,4,opt,name=connector_request_reference_id,json=connectorRequestReferenceId,proto3" json:"connector_request_reference_id,omitempty"`
}

func (x *PaymentsSyncRequest) Reset() {
	*x = PaymentsSyncRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentsSyncRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentsSyncRequest) ProtoMessage() {}

func (x *PaymentsSyncRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentsSyncRequest.ProtoReflect.Descriptor instead.
func (*PaymentsSyncRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{14}
}

func (x *PaymentsSyncRequest) GetConnector() Connector {
	if x != nil {
		return x.Connector
	}
	return Connector_CONNECTOR_UNSPECIFIED
}

func (x *PaymentsSyncRequest) GetAuthCreds() *AuthType {
	if x != nil {
		return x.AuthCreds
	}
	return nil
}

func (x *PaymentsSyncRequest) GetResourceId() string {
	if x != nil {
		return x.ResourceId
	}
	return ""
}

func (x *PaymentsSyncRequest) GetConnectorRequestReferenceId() string {
	if x != nil {
		return x.ConnectorRequestReferenceId
	}
	return ""
}

type PaymentsSyncResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status       PaymentStatus `protobuf:"varint,1,opt,name=status,proto3,enum=payments.v1.PaymentStatus" json:"status,omitempty"`
	ResourceId   *ResourceId   `protobuf:"bytes,2,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	ErrorCode    string        `protobuf:"bytes,3,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage string        `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (x *PaymentsSyncResponse) Reset() {
	*x = PaymentsSyncResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_payments_v1_payment_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PaymentsSyncResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentsSyncResponse) ProtoMessage() {}

func (x *PaymentsSyncResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_payments_v1_payment_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentsSyncResponse.ProtoReflect.Descriptor instead.
func (*PaymentsSyncResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_payments_v1_payment_proto_rawDescGZIP(), []int{15}
}

func (x *PaymentsSyncResponse) GetStatus() PaymentStatus {
	if x != nil {
		return x.Status
	}
	return PaymentStatus_PAYMENT_STATUS_UNSPECIFIED
}

func (x *PaymentsSyncResponse) GetResourceId() *ResourceId {
	if x != nil {
		return x.ResourceId
	}
	return nil
}

func (x *PaymentsSyncResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *PaymentsSyncResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

var File_api_proto_payments_v1_payment_proto protoreflect.FileDescriptor

var file_api_proto_payments_v1_payment_proto_rawDesc = []byte{
	0x0a, 0x23, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x70, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0b, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e,
	0x76, 0x31, 0x22, 0xb6, 0x01, 0x0a, 0x04, 0x43, 0x61, 0x72, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x63,
	0x61, 0x72, 0x64, 0x5f, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0a, 0x63, 0x61, 0x72, 0x64, 0x4e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x12, 0x24, 0x0a, 0x0e,
	0x63, 0x61, 0x72, 0x64, 0x5f, 0x65, 0x78, 0x70, 0x5f, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x63, 0x61, 0x72, 0x64, 0x45, 0x78, 0x70, 0x4d, 0x6f, 0x6e,
	0x74, 0x68, 0x12, 0x22, 0x0a, 0x0d, 0x63, 0x61, 0x72, 0x64, 0x5f, 0x65, 0x78, 0x70, 0x5f, 0x79,
	0x65, 0x61, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x61, 0x72, 0x64, 0x45,
	0x78, 0x70, 0x59, 0x65, 0x61, 0x72, 0x12, 0x19, 0x0a, 0x08, 0x63, 0x61, 0x72, 0x64, 0x5f, 0x63,
	0x76, 0x63, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x61, 0x72, 0x64, 0x43, 0x76,
	0x63, 0x12, 0x28, 0x0a, 0x10, 0x63, 0x61, 0x72, 0x64, 0x5f, 0x68, 0x6f, 0x6c, 0x64, 0x65, 0x72,
	0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x63, 0x61, 0x72,
	0x64, 0x48, 0x6f, 0x6c, 0x64, 0x65, 0x72, 0x4e, 0x61, 0x6d, 0x65, 0x22, 0x3a, 0x0a, 0x11, 0x50,
	0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x44, 0x61, 0x74, 0x61,
	0x12, 0x25, 0x0a, 0x04, 0x63, 0x61, 0x72, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x11,
	0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x72,
	0x64, 0x52, 0x04, 0x63, 0x61, 0x72, 0x64, 0x22, 0x8b, 0x01, 0x0a, 0x07, 0x41, 0x64, 0x64, 0x72,
	0x65, 0x73, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6e, 0x65, 0x31, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x6c, 0x69, 0x6e, 0x65, 0x31, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6e,
	0x65, 0x32, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x69, 0x6e, 0x65, 0x32, 0x12,
	0x12, 0x0a, 0x04, 0x63, 0x69, 0x74, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x63,
	0x69, 0x74, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x7a, 0x69, 0x70,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x7a, 0x69, 0x70, 0x12, 0x18, 0x0a, 0x07, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x72, 0x79, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x72, 0x79, 0x22, 0x72, 0x0a, 0x0e, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74,
	0x41, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x12, 0x2e, 0x0a, 0x07, 0x62, 0x69, 0x6c, 0x6c, 0x69,
	0x6e, 0x67, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65,
	0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x52, 0x07,
	0x62, 0x69, 0x6c, 0x6c, 0x69, 0x6e, 0x67, 0x12, 0x30, 0x0a, 0x08, 0x73, 0x68, 0x69, 0x70, 0x70,
	0x69, 0x6e, 0x67, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x70, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x52,
	0x08, 0x73, 0x68, 0x69, 0x70, 0x70, 0x69, 0x6e, 0x67, 0x22, 0x24, 0x0a, 0x09, 0x48, 0x65, 0x61,
	0x64, 0x65, 0x72, 0x4b, 0x65, 0x79, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x70, 0x69, 0x5f, 0x6b, 0x65,
	0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x70, 0x69, 0x4b, 0x65, 0x79, 0x22,
	0x36, 0x0a, 0x07, 0x42, 0x6f, 0x64, 0x79, 0x4b, 0x65, 0x79, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x70,
	0x69, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x70, 0x69,
	0x4b, 0x65, 0x79, 0x12, 0x12, 0x0a, 0x04, 0x6b, 0x65, 0x79, 0x31, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x04, 0x6b, 0x65, 0x79, 0x31, 0x22, 0x5a, 0x0a, 0x0c, 0x53, 0x69, 0x67, 0x6e, 0x61,
	0x74, 0x75, 0x72, 0x65, 0x4b, 0x65, 0x79, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x70, 0x69, 0x5f, 0x6b,
	0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x70, 0x69, 0x4b, 0x65, 0x79,
	0x12, 0x12, 0x0a, 0x04, 0x6b, 0x65, 0x79, 0x31, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x6b, 0x65, 0x79, 0x31, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x70, 0x69, 0x5f, 0x73, 0x65, 0x63, 0x72,
	0x65, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61, 0x70, 0x69, 0x53, 0x65, 0x63,
	0x72, 0x65, 0x74, 0x22, 0xc5, 0x01, 0x0a, 0x08, 0x41, 0x75, 0x74, 0x68, 0x54, 0x79, 0x70, 0x65,
	0x12, 0x37, 0x0a, 0x0a, 0x68, 0x65, 0x61, 0x64, 0x65, 0x72, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e,
	0x76, 0x31, 0x2e, 0x48, 0x65, 0x61, 0x64, 0x65, 0x72, 0x4b, 0x65, 0x79, 0x48, 0x00, 0x52, 0x09,
	0x68, 0x65, 0x61, 0x64, 0x65, 0x72, 0x4b, 0x65, 0x79, 0x12, 0x31, 0x0a, 0x08, 0x62, 0x6f, 0x64,
	0x79, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6f, 0x64, 0x79, 0x4b, 0x65,
	0x79, 0x48, 0x00, 0x52, 0x07, 0x62, 0x6f, 0x64, 0x79, 0x4b, 0x65, 0x79, 0x12, 0x40, 0x0a, 0x0d,
	0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x4b, 0x65, 0x79, 0x48, 0x00,
	0x52, 0x0c, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x4b, 0x65, 0x79, 0x42, 0x0b,
	0x0a, 0x09, 0x61, 0x75, 0x74, 0x68, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x22, 0x9f, 0x02, 0x0a, 0x12,
	0x42, 0x72, 0x6f, 0x77, 0x73, 0x65, 0x72, 0x49, 0x6e, 0x66, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x1d, 0x0a, 0x0a, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x61, 0x67, 0x65, 0x6e, 0x74,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x75, 0x73, 0x65, 0x72, 0x41, 0x67, 0x65, 0x6e,
	0x74, 0x12, 0x23, 0x0a, 0x0d, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x5f, 0x68, 0x65, 0x61, 0x64,
	0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74,
	0x48, 0x65, 0x61, 0x64, 0x65, 0x72, 0x12, 0x1a, 0x0a, 0x08, 0x6c, 0x61, 0x6e, 0x67, 0x75, 0x61,
	0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x6c, 0x61, 0x6e, 0x67, 0x75, 0x61,
	0x67, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x5f, 0x64, 0x65, 0x70, 0x74,
	0x68, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x44, 0x65,
	0x70, 0x74, 0x68, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x63, 0x72, 0x65, 0x65, 0x6e, 0x5f, 0x68, 0x65,
	0x69, 0x67, 0x68, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0c, 0x73, 0x63, 0x72, 0x65,
	0x65, 0x6e, 0x48, 0x65, 0x69, 0x67, 0x68, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x73, 0x63, 0x72, 0x65,
	0x65, 0x6e, 0x5f, 0x77, 0x69, 0x64, 0x74, 0x68, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0b,
	0x73, 0x63, 0x72, 0x65, 0x65, 0x6e, 0x57, 0x69, 0x64, 0x74, 0x68, 0x12, 0x21, 0x0a, 0x0c, 0x6a,
	0x61, 0x76, 0x61, 0x5f, 0x65, 0x6e, 0x61, 0x62, 0x6c, 0x65, 0x64, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x0b, 0x6a, 0x61, 0x76, 0x61, 0x45, 0x6e, 0x61, 0x62, 0x6c, 0x65, 0x64, 0x12, 0x1d,
	0x0a, 0x0a, 0x69, 0x70, 0x5f, 0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x18, 0x08, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x69, 0x70, 0x41, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x22, 0x9b, 0x01,
	0x0a, 0x0a, 0x52, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x49, 0x64, 0x12, 0x3a, 0x0a, 0x18,
	0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x5f, 0x74, 0x72, 0x61, 0x6e, 0x73, 0x61,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00,
	0x52, 0x16, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x54, 0x72, 0x61, 0x6e, 0x73,
	0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0c, 0x65, 0x6e, 0x63, 0x6f,
	0x64, 0x65, 0x64, 0x5f, 0x64, 0x61, 0x74, 0x61, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00,
	0x52, 0x0b, 0x65, 0x6e, 0x63, 0x6f, 0x64, 0x65, 0x64, 0x44, 0x61, 0x74, 0x61, 0x12, 0x26, 0x0a,
	0x0e, 0x6e, 0x6f, 0x5f, 0x72, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x5f, 0x69, 0x64, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x08, 0x48, 0x00, 0x52, 0x0c, 0x6e, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x49, 0x64, 0x42, 0x04, 0x0a, 0x02, 0x69, 0x64, 0x22, 0xcd, 0x01, 0x0a, 0x0c,
	0x52, 0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x46, 0x6f, 0x72, 0x6d, 0x12, 0x1a, 0x0a, 0x08,
	0x65, 0x6e, 0x64, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08,
	0x65, 0x6e, 0x64, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x65, 0x74, 0x68,
	0x6f, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64,
	0x12, 0x4a, 0x0a, 0x0b, 0x66, 0x6f, 0x72, 0x6d, 0x5f, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x18,
	0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x29, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73,
	0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x46, 0x6f, 0x72, 0x6d,
	0x2e, 0x46, 0x6f, 0x72, 0x6d, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79,
	0x52, 0x0a, 0x66, 0x6f, 0x72, 0x6d, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x1a, 0x3d, 0x0a, 0x0f,
	0x46, 0x6f, 0x72, 0x6d, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12,
	0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x6b, 0x65,
	0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22, 0x40, 0x0a, 0x0f, 0x52,
	0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x44, 0x61, 0x74, 0x61, 0x12, 0x2d,
	0x0a, 0x04, 0x66, 0x6f, 0x72, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x70,
	0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x64, 0x69, 0x72,
	0x65, 0x63, 0x74, 0x46, 0x6f, 0x72, 0x6d, 0x52, 0x04, 0x66, 0x6f, 0x72, 0x6d, 0x22, 0xdf, 0x06,
	0x0a, 0x18, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72,
	0x69, 0x7a, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75,
	0x6e, 0x74, 0x12, 0x31, 0x0a, 0x08, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x79, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x0e, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e,
	0x76, 0x31, 0x2e, 0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x79, 0x52, 0x08, 0x63, 0x75, 0x72,
	0x72, 0x65, 0x6e, 0x63, 0x79, 0x12, 0x34, 0x0a, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74,
	0x6f, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x16, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65,
	0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72,
	0x52, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x34, 0x0a, 0x0a, 0x61,
	0x75, 0x74, 0x68, 0x5f, 0x63, 0x72, 0x65, 0x64, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x15, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x75,
	0x74, 0x68, 0x54, 0x79, 0x70, 0x65, 0x52, 0x09, 0x61, 0x75, 0x74, 0x68, 0x43, 0x72, 0x65, 0x64,
	0x73, 0x12, 0x41, 0x0a, 0x0e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x6d, 0x65, 0x74,
	0x68, 0x6f, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e, 0x70, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d,
	0x65, 0x74, 0x68, 0x6f, 0x64, 0x52, 0x0d, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x65,
	0x74, 0x68, 0x6f, 0x64, 0x12, 0x4e, 0x0a, 0x13, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x5f,
	0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x5f, 0x64, 0x61, 0x74, 0x61, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1e, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e,
	0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x44, 0x61, 0x74,
	0x61, 0x52, 0x11, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64,
	0x44, 0x61, 0x74, 0x61, 0x12, 0x35, 0x0a, 0x07, 0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x18,
	0x07, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73,
	0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x41, 0x64, 0x64, 0x72, 0x65,
	0x73, 0x73, 0x52, 0x07, 0x61, 0x64, 0x64, 0x72, 0x65, 0x73, 0x73, 0x12, 0x3c, 0x0a, 0x09, 0x61,
	0x75, 0x74, 0x68, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x08, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1f,
	0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x75, 0x74,
	0x68, 0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x79, 0x70, 0x65, 0x52,
	0x08, 0x61, 0x75, 0x74, 0x68, 0x54, 0x79, 0x70, 0x65, 0x12, 0x43, 0x0a, 0x1e, 0x63, 0x6f, 0x6e,
	0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x5f, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x72,
	0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x09, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x1b, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x52, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x49, 0x64, 0x12, 0x28,
	0x0a, 0x10, 0x65, 0x6e, 0x72, 0x6f, 0x6c, 0x6c, 0x65, 0x64, 0x5f, 0x66, 0x6f, 0x72, 0x5f, 0x33,
	0x64, 0x73, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0e, 0x65, 0x6e, 0x72, 0x6f, 0x6c, 0x6c,
	0x65, 0x64, 0x46, 0x6f, 0x72, 0x33, 0x64, 0x73, 0x12, 0x4a, 0x0a, 0x21, 0x72, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x5f, 0x69, 0x6e, 0x63, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x61, 0x6c, 0x5f,
	0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x0b, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x1f, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x49, 0x6e, 0x63, 0x72,
	0x65, 0x6d, 0x65, 0x6e, 0x74, 0x61, 0x6c, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x6d, 0x69, 0x6e, 0x6f, 0x72, 0x5f, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x0c, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x6d, 0x69, 0x6e, 0x6f,
	0x72, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x65, 0x6d, 0x61, 0x69, 0x6c,
	0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6d, 0x61, 0x69, 0x6c, 0x12, 0x42, 0x0a,
	0x0c, 0x62, 0x72, 0x6f, 0x77, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x6e, 0x66, 0x6f, 0x18, 0x0e, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1f, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x42, 0x72, 0x6f, 0x77, 0x73, 0x65, 0x72, 0x49, 0x6e, 0x66, 0x6f, 0x72, 0x6d, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0b, 0x62, 0x72, 0x6f, 0x77, 0x73, 0x65, 0x72, 0x49, 0x6e, 0x66,
	0x6f, 0x12, 0x2d, 0x0a, 0x12, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x5f, 0x63,
	0x75, 0x73, 0x74, 0x6f, 0x6d, 0x65, 0x72, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x63,
	0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x43, 0x75, 0x73, 0x74, 0x6f, 0x6d, 0x65, 0x72,
	0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x74, 0x75, 0x72, 0x6e, 0x5f, 0x75, 0x72, 0x6c, 0x18, 0x10,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x74, 0x75, 0x72, 0x6e, 0x55, 0x72, 0x6c, 0x22,
	0xdd, 0x02, 0x0a, 0x19, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x41, 0x75, 0x74, 0x68,
	0x6f, 0x72, 0x69, 0x7a, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x32, 0x0a,
	0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e,
	0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x12, 0x38, 0x0a, 0x0b, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x69, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74,
	0x73, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x49, 0x64, 0x52,
	0x0a, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x49, 0x64, 0x12, 0x47, 0x0a, 0x10, 0x72,
	0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x64, 0x61, 0x74, 0x61, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73,
	0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x44,
	0x61, 0x74, 0x61, 0x52, 0x0f, 0x72, 0x65, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x44, 0x61, 0x74, 0x61, 0x12, 0x45, 0x0a, 0x1f, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f,
	0x72, 0x5f, 0x72, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x5f, 0x72, 0x65, 0x66, 0x65, 0x72,
	0x65, 0x6e, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x1c, 0x63,
	0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x52, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x65,
	0x72, 0x72, 0x6f, 0x72, 0x5f, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x43, 0x6f, 0x64, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72,
	0x72, 0x6f, 0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22,
	0xe7, 0x01, 0x0a, 0x13, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x53, 0x79, 0x6e, 0x63,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x34, 0x0a, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65,
	0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x16, 0x2e, 0x70, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74,
	0x6f, 0x72, 0x52, 0x09, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x34, 0x0a,
	0x0a, 0x61, 0x75, 0x74, 0x68, 0x5f, 0x63, 0x72, 0x65, 0x64, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x15, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e,
	0x41, 0x75, 0x74, 0x68, 0x54, 0x79, 0x70, 0x65, 0x52, 0x09, 0x61, 0x75, 0x74, 0x68, 0x43, 0x72,
	0x65, 0x64, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f,
	0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72,
	0x63, 0x65, 0x49, 0x64, 0x12, 0x43, 0x0a, 0x1e, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f,
	0x72, 0x5f, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65,
	0x6e, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x1b, 0x63, 0x6f,
	0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x52, 0x65,
	0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x49, 0x64, 0x22, 0xc8, 0x01, 0x0a, 0x14, 0x50, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x53, 0x79, 0x6e, 0x63, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x0e, 0x32, 0x1a, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06,
	0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x38, 0x0a, 0x0b, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72,
	0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x73, 0x6f, 0x75, 0x72,
	0x63, 0x65, 0x49, 0x64, 0x52, 0x0a, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x49, 0x64,
	0x12, 0x1d, 0x0a, 0x0a, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x43, 0x6f, 0x64, 0x65, 0x12,
	0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73,
	0x73, 0x61, 0x67, 0x65, 0x2a, 0x48, 0x0a, 0x08, 0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x79,
	0x12, 0x18, 0x0a, 0x14, 0x43, 0x55, 0x52, 0x52, 0x45, 0x4e, 0x43, 0x59, 0x5f, 0x55, 0x4e, 0x53,
	0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x07, 0x0a, 0x03, 0x55, 0x53,
	0x44, 0x10, 0x01, 0x12, 0x07, 0x0a, 0x03, 0x45, 0x55, 0x52, 0x10, 0x02, 0x12, 0x07, 0x0a, 0x03,
	0x47, 0x42, 0x50, 0x10, 0x03, 0x12, 0x07, 0x0a, 0x03, 0x49, 0x4e, 0x52, 0x10, 0x04, 0x2a, 0x4b,
	0x0a, 0x09, 0x43, 0x6f, 0x6e, 0x6e, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x19, 0x0a, 0x15, 0x43,
	0x4f, 0x4e, 0x4e, 0x45, 0x43, 0x54, 0x4f, 0x52, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49,
	0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x0a, 0x0a, 0x06, 0x53, 0x54, 0x52, 0x49, 0x50, 0x45,
	0x10, 0x01, 0x12, 0x0c, 0x0a, 0x08, 0x52, 0x41, 0x5a, 0x4f, 0x52, 0x50, 0x41, 0x59, 0x10, 0x02,
	0x12, 0x09, 0x0a, 0x05, 0x41, 0x44, 0x59, 0x45, 0x4e, 0x10, 0x03, 0x2a, 0x39, 0x0a, 0x0d, 0x50,
	0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x12, 0x1e, 0x0a, 0x1a,
	0x50, 0x41, 0x59, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x55,
	0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x08, 0x0a, 0x04,
	0x43, 0x41, 0x52, 0x44, 0x10, 0x01, 0x2a, 0x58, 0x0a, 0x12, 0x41, 0x75, 0x74, 0x68, 0x65, 0x6e,
	0x74, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x79, 0x70, 0x65, 0x12, 0x23, 0x0a, 0x1f,
	0x41, 0x55, 0x54, 0x48, 0x45, 0x4e, 0x54, 0x49, 0x43, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x0c, 0x0a, 0x08, 0x54, 0x48, 0x52, 0x45, 0x45, 0x5f, 0x44, 0x53, 0x10, 0x01, 0x12,
	0x0f, 0x0a, 0x0b, 0x4e, 0x4f, 0x5f, 0x54, 0x48, 0x52, 0x45, 0x45, 0x5f, 0x44, 0x53, 0x10, 0x02,
	0x2a, 0xb5, 0x01, 0x0a, 0x0d, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x12, 0x1e, 0x0a, 0x1a, 0x50, 0x41, 0x59, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x53, 0x54,
	0x41, 0x54, 0x55, 0x53, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44,
	0x10, 0x00, 0x12, 0x0b, 0x0a, 0x07, 0x53, 0x54, 0x41, 0x52, 0x54, 0x45, 0x44, 0x10, 0x01, 0x12,
	0x0b, 0x0a, 0x07, 0x50, 0x45, 0x4e, 0x44, 0x49, 0x4e, 0x47, 0x10, 0x02, 0x12, 0x1a, 0x0a, 0x16,
	0x41, 0x55, 0x54, 0x48, 0x45, 0x4e, 0x54, 0x49, 0x43, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x50,
	0x45, 0x4e, 0x44, 0x49, 0x4e, 0x47, 0x10, 0x03, 0x12, 0x0e, 0x0a, 0x0a, 0x41, 0x55, 0x54, 0x48,
	0x4f, 0x52, 0x49, 0x5a, 0x45, 0x44, 0x10, 0x04, 0x12, 0x18, 0x0a, 0x14, 0x41, 0x55, 0x54, 0x48,
	0x4f, 0x52, 0x49, 0x5a, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x46, 0x41, 0x49, 0x4c, 0x45, 0x44,
	0x10, 0x05, 0x12, 0x0b, 0x0a, 0x07, 0x46, 0x41, 0x49, 0x4c, 0x55, 0x52, 0x45, 0x10, 0x06, 0x12,
	0x0b, 0x0a, 0x07, 0x43, 0x48, 0x41, 0x52, 0x47, 0x45, 0x44, 0x10, 0x07, 0x12, 0x0a, 0x0a, 0x06,
	0x56, 0x4f, 0x49, 0x44, 0x45, 0x44, 0x10, 0x08, 0x32, 0xc7, 0x01, 0x0a, 0x0e, 0x50, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x61, 0x0a, 0x10, 0x50,
	0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x12,
	0x25, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x26, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74,
	0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x41, 0x75, 0x74,
	0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52,
	0x0a, 0x0b, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x53, 0x79, 0x6e, 0x63, 0x12, 0x20, 0x2e,
	0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x73, 0x53, 0x79, 0x6e, 0x63, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x21, 0x2e, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x53, 0x79, 0x6e, 0x63, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x42, 0x48, 0x5a, 0x46, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d,
	0x2f, 0x6b, 0x65, 0x76, 0x69, 0x6e, 0x30, 0x37, 0x36, 0x39, 0x36, 0x2f, 0x63, 0x6f, 0x6e, 0x6e,
	0x65, 0x63, 0x74, 0x6f, 0x72, 0x2d, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x2f, 0x61, 0x70, 0x69,
	0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x2f,
	0x76, 0x31, 0x3b, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_payments_v1_payment_proto_rawDescOnce sync.Once
	file_api_proto_payments_v1_payment_proto_rawDescData = file_api_proto_payments_v1_payment_proto_rawDesc
)

func file_api_proto_payments_v1_payment_proto_rawDescGZIP() []byte {
	file_api_proto_payments_v1_payment_proto_rawDescOnce.Do(func() {
		file_api_proto_payments_v1_payment_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_payments_v1_payment_proto_rawDescData)
	})
	return file_api_proto_payments_v1_payment_proto_rawDescData
}

var file_api_proto_payments_v1_payment_proto_enumTypes = make([]protoimpl.EnumInfo, 5)
var file_api_proto_payments_v1_payment_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_api_proto_payments_v1_payment_proto_goTypes = []interface{}{
	(Currency)(0),                     // 0: payments.v1.Currency
	(Connector)(0),                    // 1: payments.v1.Connector
	(PaymentMethod)(0),                // 2: payments.v1.PaymentMethod
	(AuthenticationType)(0),           // 3: payments.v1.AuthenticationType
	(PaymentStatus)(0),                // 4: payments.v1.PaymentStatus
	(*Card)(nil),                      // 5: payments.v1.Card
	(*PaymentMethodData)(nil),         // 6: payments.v1.PaymentMethodData
	(*Address)(nil),                   // 7: payments.v1.Address
	(*PaymentAddress)(nil),            // 8: payments.v1.PaymentAddress
	(*HeaderKey)(nil),                 // 9: payments.v1.HeaderKey
	(*BodyKey)(nil),                   // 10: payments.v1.BodyKey
	(*SignatureKey)(nil),              // 11: payments.v1.SignatureKey
	(*AuthType)(nil),                  // 12: payments.v1.AuthType
	(*BrowserInformation)(nil),        // 13: payments.v1.BrowserInformation
	(*ResourceId)(nil),                // 14: payments.v1.ResourceId
	(*RedirectForm)(nil),              // 15: payments.v1.RedirectForm
	(*RedirectionData)(nil),           // 16: payments.v1.RedirectionData
	(*PaymentsAuthorizeRequest)(nil),  // 17: payments.v1.PaymentsAuthorizeRequest
	(*PaymentsAuthorizeResponse)(nil), // 18: payments.v1.PaymentsAuthorizeResponse
	(*PaymentsSyncRequest)(nil),       // 19: payments.v1.PaymentsSyncRequest
	(*PaymentsSyncResponse)(nil),      // 20: payments.v1.PaymentsSyncResponse
	nil,                               // 21: payments.v1.RedirectForm.FormFieldsEntry
}
var file_api_proto_payments_v1_payment_proto_depIdxs = []int32{
	5,  // 0: payments.v1.PaymentMethodData.card:type_name -> payments.v1.Card
	7,  // 1: payments.v1.PaymentAddress.billing:type_name -> payments.v1.Address
	7,  // 2: payments.v1.PaymentAddress.shipping:type_name -> payments.v1.Address
	9,  // 3: payments.v1.AuthType.header_key:type_name -> payments.v1.HeaderKey
	10, // 4: payments.v1.AuthType.body_key:type_name -> payments.v1.BodyKey
	11, // 5: payments.v1.AuthType.signature_key:type_name -> payments.v1.SignatureKey
	21, // 6: payments.v1.RedirectForm.form_fields:type_name -> payments.v1.RedirectForm.FormFieldsEntry
	15, // 7: payments.v1.RedirectionData.form:type_name -> payments.v1.RedirectForm
	0,  // 8: payments.v1.PaymentsAuthorizeRequest.currency:type_name -> payments.v1.Currency
	1,  // 9: payments.v1.PaymentsAuthorizeRequest.connector:type_name -> payments.v1.Connector
	12, // 10: payments.v1.PaymentsAuthorizeRequest.auth_creds:type_name -> payments.v1.AuthType
	2,  // 11: payments.v1.PaymentsAuthorizeRequest.payment_method:type_name -> payments.v1.PaymentMethod
	6,  // 12: payments.v1.PaymentsAuthorizeRequest.payment_method_data:type_name -> payments.v1.PaymentMethodData
	8,  // 13: payments.v1.PaymentsAuthorizeRequest.address:type_name -> payments.v1.PaymentAddress
	3,  // 14: payments.v1.PaymentsAuthorizeRequest.auth_type:type_name -> payments.v1.AuthenticationType
	13, // 15: payments.v1.PaymentsAuthorizeRequest.browser_info:type_name -> payments.v1.BrowserInformation
	4,  // 16: payments.v1.PaymentsAuthorizeResponse.status:type_name -> payments.v1.PaymentStatus
	14, // 17: payments.v1.PaymentsAuthorizeResponse.resource_id:type_name -> payments.v1.ResourceId
	16, // 18: payments.v1.PaymentsAuthorizeResponse.redirection_data:type_name -> payments.v1.RedirectionData
	1,  // 19: payments.v1.PaymentsSyncRequest.connector:type_name -> payments.v1.Connector
	12, // 20: payments.v1.PaymentsSyncRequest.auth_creds:type_name -> payments.v1.AuthType
	4,  // 21: payments.v1.PaymentsSyncResponse.status:type_name -> payments.v1.PaymentStatus
	14, // 22: payments.v1.PaymentsSyncResponse.resource_id:type_name -> payments.v1.ResourceId
	17, // 23: payments.v1.PaymentService.PaymentAuthorize:input_type -> payments.v1.PaymentsAuthorizeRequest
	19, // 24: payments.v1.PaymentService.PaymentSync:input_type -> payments.v1.PaymentsSyncRequest
	18, // 25: payments.v1.PaymentService.PaymentAuthorize:output_type -> payments.v1.PaymentsAuthorizeResponse
	20, // 26: payments.v1.PaymentService.PaymentSync:output_type -> payments.v1.PaymentsSyncResponse
	25, // [25:27] is the sub-list for method output_type
	23, // [23:25] is the sub-list for method input_type
	23, // [23:23] is the sub-list for extension type_name
	23, // [23:23] is the sub-list for extension extendee
	0,  // [0:23] is the sub-list for field type_name
}

func init() { file_api_proto_payments_v1_payment_proto_init() }
func file_api_proto_payments_v1_payment_proto_init() {
	if File_api_proto_payments_v1_payment_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_api_proto_payments_v1_payment_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Card); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentMethodData); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Address); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentAddress); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*HeaderKey); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*BodyKey); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SignatureKey); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[7].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AuthType); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[8].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*BrowserInformation); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[9].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ResourceId); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[10].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*RedirectForm); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[11].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*RedirectionData); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[12].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentsAuthorizeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[13].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentsAuthorizeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[14].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentsSyncRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_payments_v1_payment_proto_msgTypes[15].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PaymentsSyncResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	file_api_proto_payments_v1_payment_proto_msgTypes[7].OneofWrappers = []interface{}{
		(*AuthType_HeaderKey)(nil),
		(*AuthType_BodyKey)(nil),
		(*AuthType_SignatureKey)(nil),
	}
	file_api_proto_payments_v1_payment_proto_msgTypes[9].OneofWrappers = []interface{}{
		(*ResourceId_ConnectorTransactionId)(nil),
		(*ResourceId_EncodedData)(nil),
		(*ResourceId_NoResponseId)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_payments_v1_payment_proto_rawDesc,
			NumEnums:      5,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_payments_v1_payment_proto_goTypes,
		DependencyIndexes: file_api_proto_payments_v1_payment_proto_depIdxs,
		EnumInfos:         file_api_proto_payments_v1_payment_proto_enumTypes,
		MessageInfos:      file_api_proto_payments_v1_payment_proto_msgTypes,
	}.Build()
	File_api_proto_payments_v1_payment_proto = out.File
	file_api_proto_payments_v1_payment_proto_rawDesc = nil
	file_api_proto_payments_v1_payment_proto_goTypes = nil
	file_api_proto_payments_v1_payment_proto_depIdxs = nil
}
