package ast

import "fmt"

type SectionKind int

const (
	SectionAsserts SectionKind = iota
	SectionQueryParams
	SectionBasicAuth
	SectionFormParams
	SectionMultipartFormData
	SectionCookies
	SectionCaptures
	SectionOptions
	sectionKindCount
)

var sectionNames = [sectionKindCount]string{
	SectionAsserts:           "Asserts",
	SectionQueryParams:       "QueryStringParams",
	SectionBasicAuth:         "BasicAuth",
	SectionFormParams:        "FormParams",
	SectionMultipartFormData: "MultipartFormData",
	SectionCookies:           "Cookies",
	SectionCaptures:          "Captures",
	SectionOptions:           "Options",
}

func (k SectionKind) String() string {
	return kindName(sectionNames[:], int(k), "SectionKind")
}

func SectionKinds() []SectionKind {
	return kinds[SectionKind](sectionKindCount)
}

type QueryKind int

const (
	QueryHeader QueryKind = iota
	QueryCookie
	QueryXPath
	QueryJSONPath
	QueryRegex
	QueryVariable
	QueryCertificate
	QueryStatus
	QueryVersion
	QueryURL
	QueryBody
	QueryDuration
	QueryBytes
	QuerySha256
	QueryMd5
	QueryIP
	QueryRedirects
	queryKindCount
)

var queryNames = [queryKindCount]string{
	QueryHeader:      "header",
	QueryCookie:      "cookie",
	QueryXPath:       "xpath",
	QueryJSONPath:    "jsonpath",
	QueryRegex:       "regex",
	QueryVariable:    "variable",
	QueryCertificate: "certificate",
	QueryStatus:      "status",
	QueryVersion:     "version",
	QueryURL:         "url",
	QueryBody:        "body",
	QueryDuration:    "duration",
	QueryBytes:       "bytes",
	QuerySha256:      "sha256",
	QueryMd5:         "md5",
	QueryIP:          "ip",
	QueryRedirects:   "redirects",
}

func (k QueryKind) String() string {
	return kindName(queryNames[:], int(k), "QueryKind")
}

func QueryKinds() []QueryKind {
	return kinds[QueryKind](queryKindCount)
}

type FilterKind int

const (
	FilterBase64Decode FilterKind = iota
	FilterBase64Encode
	FilterBase64URLSafeDecode
	FilterBase64URLSafeEncode
	FilterCount
	FilterDaysAfterNow
	FilterDaysBeforeNow
	FilterDecode
	FilterFirst
	FilterFormat
	FilterHTMLEscape
	FilterHTMLUnescape
	FilterJSONPath
	FilterLast
	FilterLocation
	FilterNth
	FilterRegex
	FilterReplace
	FilterReplaceRegex
	FilterSplit
	FilterToDate
	FilterToFloat
	FilterToHex
	FilterToInt
	FilterToString
	FilterURLDecode
	FilterURLEncode
	FilterURLQueryParam
	FilterXPath
	filterKindCount
)

var filterNames = [filterKindCount]string{
	FilterBase64Decode:        "base64Decode",
	FilterBase64Encode:        "base64Encode",
	FilterBase64URLSafeDecode: "base64UrlSafeDecode",
	FilterBase64URLSafeEncode: "base64UrlSafeEncode",
	FilterCount:               "count",
	FilterDaysAfterNow:        "daysAfterNow",
	FilterDaysBeforeNow:       "daysBeforeNow",
	FilterDecode:              "decode",
	FilterFirst:               "first",
	FilterFormat:              "format",
	FilterHTMLEscape:          "htmlEscape",
	FilterHTMLUnescape:        "htmlUnescape",
	FilterJSONPath:            "jsonpath",
	FilterLast:                "last",
	FilterLocation:            "location",
	FilterNth:                 "nth",
	FilterRegex:               "regex",
	FilterReplace:             "replace",
	FilterReplaceRegex:        "replaceRegex",
	FilterSplit:               "split",
	FilterToDate:              "toDate",
	FilterToFloat:             "toFloat",
	FilterToHex:               "toHex",
	FilterToInt:               "toInt",
	FilterToString:            "toString",
	FilterURLDecode:           "urlDecode",
	FilterURLEncode:           "urlEncode",
	FilterURLQueryParam:       "urlQueryParam",
	FilterXPath:               "xpath",
}

func (k FilterKind) String() string {
	return kindName(filterNames[:], int(k), "FilterKind")
}

func FilterKinds() []FilterKind {
	return kinds[FilterKind](filterKindCount)
}

type PredicateKind int

const (
	PredicateEqual PredicateKind = iota
	PredicateNotEqual
	PredicateGreaterThan
	PredicateGreaterThanOrEqual
	PredicateLessThan
	PredicateLessThanOrEqual
	PredicateStartWith
	PredicateEndWith
	PredicateContain
	PredicateInclude
	PredicateMatch
	PredicateIsInteger
	PredicateIsFloat
	PredicateIsBoolean
	PredicateIsString
	PredicateIsCollection
	PredicateIsDate
	PredicateIsIsoDate
	PredicateExist
	PredicateIsEmpty
	PredicateIsNumber
	PredicateIsIPv4
	PredicateIsIPv6
	predicateKindCount
)

var predicateNames = [predicateKindCount]string{
	PredicateEqual:              "==",
	PredicateNotEqual:           "!=",
	PredicateGreaterThan:        ">",
	PredicateGreaterThanOrEqual: ">=",
	PredicateLessThan:           "<",
	PredicateLessThanOrEqual:    "<=",
	PredicateStartWith:          "startsWith",
	PredicateEndWith:            "endsWith",
	PredicateContain:            "contains",
	PredicateInclude:            "includes",
	PredicateMatch:              "matches",
	PredicateIsInteger:          "isInteger",
	PredicateIsFloat:            "isFloat",
	PredicateIsBoolean:          "isBoolean",
	PredicateIsString:           "isString",
	PredicateIsCollection:       "isCollection",
	PredicateIsDate:             "isDate",
	PredicateIsIsoDate:          "isIsoDate",
	PredicateExist:              "exists",
	PredicateIsEmpty:            "isEmpty",
	PredicateIsNumber:           "isNumber",
	PredicateIsIPv4:             "isIpv4",
	PredicateIsIPv6:             "isIpv6",
}

func (k PredicateKind) String() string {
	return kindName(predicateNames[:], int(k), "PredicateKind")
}

// HasValue reports whether the predicate takes an operand.
func (k PredicateKind) HasValue() bool {
	return k <= PredicateMatch
}

func PredicateKinds() []PredicateKind {
	return kinds[PredicateKind](predicateKindCount)
}

type PredicateValueKind int

const (
	PredicateValueString PredicateValueKind = iota
	PredicateValueMultiline
	PredicateValueNumber
	PredicateValueBool
	PredicateValueFile
	PredicateValueHex
	PredicateValueBase64
	PredicateValuePlaceholder
	PredicateValueNull
	PredicateValueRegex
	predicateValueKindCount
)

var predicateValueNames = [predicateValueKindCount]string{
	PredicateValueString:      "string",
	PredicateValueMultiline:   "multiline",
	PredicateValueNumber:      "number",
	PredicateValueBool:        "boolean",
	PredicateValueFile:        "file",
	PredicateValueHex:         "hex",
	PredicateValueBase64:      "base64",
	PredicateValuePlaceholder: "placeholder",
	PredicateValueNull:        "null",
	PredicateValueRegex:       "regex",
}

func (k PredicateValueKind) String() string {
	return kindName(predicateValueNames[:], int(k), "PredicateValueKind")
}

func PredicateValueKinds() []PredicateValueKind {
	return kinds[PredicateValueKind](predicateValueKindCount)
}

type BytesKind int

const (
	BytesJSON BytesKind = iota
	BytesXML
	BytesMultiline
	BytesOneLine
	BytesBase64
	BytesFile
	BytesHex
	bytesKindCount
)

var bytesNames = [bytesKindCount]string{
	BytesJSON:      "json",
	BytesXML:       "xml",
	BytesMultiline: "multiline",
	BytesOneLine:   "oneline",
	BytesBase64:    "base64",
	BytesFile:      "file",
	BytesHex:       "hex",
}

func (k BytesKind) String() string {
	return kindName(bytesNames[:], int(k), "BytesKind")
}

func BytesKinds() []BytesKind {
	return kinds[BytesKind](bytesKindCount)
}

type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONPlaceholder
	JSONNumber
	JSONString
	JSONBool
	JSONList
	JSONObject
	jsonKindCount
)

var jsonNames = [jsonKindCount]string{
	JSONNull:        "null",
	JSONPlaceholder: "placeholder",
	JSONNumber:      "number",
	JSONString:      "string",
	JSONBool:        "boolean",
	JSONList:        "list",
	JSONObject:      "object",
}

func (k JSONKind) String() string {
	return kindName(jsonNames[:], int(k), "JSONKind")
}

type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberFloat
	NumberBigInteger
)

type ExprKind int

const (
	ExprVariable ExprKind = iota
	ExprFunction
)

type VersionValue int

const (
	VersionAny VersionValue = iota
	Version10
	Version11
	Version2
	Version3
	versionValueCount
)

var versionNames = [versionValueCount]string{
	VersionAny: "HTTP",
	Version10:  "HTTP/1.0",
	Version11:  "HTTP/1.1",
	Version2:   "HTTP/2",
	Version3:   "HTTP/3",
}

func (v VersionValue) String() string {
	return kindName(versionNames[:], int(v), "VersionValue")
}

type CertificateAttributeName int

const (
	CertificateSubject CertificateAttributeName = iota
	CertificateIssuer
	CertificateStartDate
	CertificateExpireDate
	CertificateSerialNumber
	CertificateSubjectAltName
	certificateAttributeCount
)

var certificateNames = [certificateAttributeCount]string{
	CertificateSubject:        "Subject",
	CertificateIssuer:         "Issuer",
	CertificateStartDate:      "Start-Date",
	CertificateExpireDate:     "Expire-Date",
	CertificateSerialNumber:   "Serial-Number",
	CertificateSubjectAltName: "Subject-Alt-Name",
}

func (n CertificateAttributeName) String() string {
	return kindName(certificateNames[:], int(n), "CertificateAttributeName")
}

type CookieAttributeKind int

const (
	CookieValue CookieAttributeKind = iota
	CookieExpires
	CookieMaxAge
	CookieDomain
	CookiePathAttr
	CookieSecure
	CookieHTTPOnly
	CookieSameSite
	cookieAttributeCount
)

var cookieAttributeNames = [cookieAttributeCount]string{
	CookieValue:    "Value",
	CookieExpires:  "Expires",
	CookieMaxAge:   "Max-Age",
	CookieDomain:   "Domain",
	CookiePathAttr: "Path",
	CookieSecure:   "Secure",
	CookieHTTPOnly: "HttpOnly",
	CookieSameSite: "SameSite",
}

func (k CookieAttributeKind) String() string {
	return kindName(cookieAttributeNames[:], int(k), "CookieAttributeKind")
}

type MultilineKind int

const (
	MultilineText MultilineKind = iota
	MultilineJSON
	MultilineXML
	MultilineGraphQL
	multilineKindCount
)

// language tag written after the opening fence; empty for plain text
var multilineLangs = [multilineKindCount]string{
	MultilineText:    "",
	MultilineJSON:    "json",
	MultilineXML:     "xml",
	MultilineGraphQL: "graphql",
}

func (k MultilineKind) Lang() string {
	if k < 0 || k >= multilineKindCount {
		return ""
	}
	return multilineLangs[k]
}

type MultilineAttribute int

const (
	MultilineEscape MultilineAttribute = iota
	MultilineNoVariable
)

func (a MultilineAttribute) String() string {
	switch a {
	case MultilineEscape:
		return "escape"
	case MultilineNoVariable:
		return "novariable"
	}
	return fmt.Sprintf("MultilineAttribute(%d)", int(a))
}

type DurationUnit int

const (
	DurationMillisecond DurationUnit = iota
	DurationSecond
	DurationMinute
	DurationHour
)

func (u DurationUnit) String() string {
	switch u {
	case DurationMillisecond:
		return "ms"
	case DurationSecond:
		return "s"
	case DurationMinute:
		return "m"
	case DurationHour:
		return "h"
	}
	return fmt.Sprintf("DurationUnit(%d)", int(u))
}

type VariableValueKind int

const (
	VariableNull VariableValueKind = iota
	VariableBool
	VariableNumber
	VariableString
)

// OptionFamily groups option kinds by the type of value they carry.
type OptionFamily int

const (
	OptionTemplate OptionFamily = iota
	OptionFilename
	OptionBool
	OptionNatural
	OptionDuration
	OptionCount
	OptionVariable
)

type OptionKind int

const (
	OptionAwsSigV4 OptionKind = iota
	OptionCaCertificate
	OptionClientCert
	OptionClientKey
	OptionCompressed
	OptionConnectTo
	OptionConnectTimeout
	OptionDelay
	OptionFollowLocation
	OptionFollowLocationTrusted
	OptionHeader
	OptionHTTP10
	OptionHTTP11
	OptionHTTP2
	OptionHTTP3
	OptionInsecure
	OptionIPv4
	OptionIPv6
	OptionLimitRate
	OptionMaxRedirect
	OptionMaxTime
	OptionNetRc
	OptionNetRcFile
	OptionNetRcOptional
	OptionOutput
	OptionPathAsIs
	OptionPinnedPublicKey
	OptionProxy
	OptionRepeat
	OptionResolve
	OptionRetry
	OptionRetryInterval
	OptionSkip
	OptionUnixSocket
	OptionUser
	OptionVariableDef
	OptionVerbose
	OptionVeryVerbose
	optionKindCount
)

type optionSpec struct {
	name   string
	family OptionFamily
}

var optionSpecs = [optionKindCount]optionSpec{
	OptionAwsSigV4:              {"aws-sigv4", OptionTemplate},
	OptionCaCertificate:         {"cacert", OptionFilename},
	OptionClientCert:            {"cert", OptionFilename},
	OptionClientKey:             {"key", OptionFilename},
	OptionCompressed:            {"compressed", OptionBool},
	OptionConnectTo:             {"connect-to", OptionTemplate},
	OptionConnectTimeout:        {"connect-timeout", OptionDuration},
	OptionDelay:                 {"delay", OptionDuration},
	OptionFollowLocation:        {"location", OptionBool},
	OptionFollowLocationTrusted: {"location-trusted", OptionBool},
	OptionHeader:                {"header", OptionTemplate},
	OptionHTTP10:                {"http1.0", OptionBool},
	OptionHTTP11:                {"http1.1", OptionBool},
	OptionHTTP2:                 {"http2", OptionBool},
	OptionHTTP3:                 {"http3", OptionBool},
	OptionInsecure:              {"insecure", OptionBool},
	OptionIPv4:                  {"ipv4", OptionBool},
	OptionIPv6:                  {"ipv6", OptionBool},
	OptionLimitRate:             {"limit-rate", OptionNatural},
	OptionMaxRedirect:           {"max-redirs", OptionCount},
	OptionMaxTime:               {"max-time", OptionDuration},
	OptionNetRc:                 {"netrc", OptionBool},
	OptionNetRcFile:             {"netrc-file", OptionFilename},
	OptionNetRcOptional:         {"netrc-optional", OptionBool},
	OptionOutput:                {"output", OptionFilename},
	OptionPathAsIs:              {"path-as-is", OptionBool},
	OptionPinnedPublicKey:       {"pinnedpubkey", OptionTemplate},
	OptionProxy:                 {"proxy", OptionTemplate},
	OptionRepeat:                {"repeat", OptionCount},
	OptionResolve:               {"resolve", OptionTemplate},
	OptionRetry:                 {"retry", OptionCount},
	OptionRetryInterval:         {"retry-interval", OptionDuration},
	OptionSkip:                  {"skip", OptionBool},
	OptionUnixSocket:            {"unix-socket", OptionFilename},
	OptionUser:                  {"user", OptionTemplate},
	OptionVariableDef:           {"variable", OptionVariable},
	OptionVerbose:               {"verbose", OptionBool},
	OptionVeryVerbose:           {"very-verbose", OptionBool},
}

func (k OptionKind) String() string {
	if k < 0 || k >= optionKindCount {
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
	return optionSpecs[k].name
}

// Family reports which OptionValue field holds the value of options of
// this kind. ok is false for kinds outside the grammar.
func (k OptionKind) Family() (OptionFamily, bool) {
	if k < 0 || k >= optionKindCount {
		return 0, false
	}
	return optionSpecs[k].family, true
}

func OptionKinds() []OptionKind {
	return kinds[OptionKind](optionKindCount)
}

func kindName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) || names[i] == "" {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func kinds[K ~int](count K) []K {
	out := make([]K, 0, int(count))
	for k := K(0); k < count; k++ {
		out = append(out, k)
	}
	return out
}
