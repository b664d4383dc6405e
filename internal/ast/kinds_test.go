package ast

import (
	"strings"
	"testing"
)

func TestEveryKindHasIdentifier(t *testing.T) {
	check := func(t *testing.T, family string, names []string) {
		t.Helper()
		seen := make(map[string]struct{}, len(names))
		for i, name := range names {
			if name == "" || strings.Contains(name, "(") {
				t.Fatalf("%s kind %d has no identifier: %q", family, i, name)
			}
			if _, dup := seen[name]; dup {
				t.Fatalf("%s identifier %q used twice", family, name)
			}
			seen[name] = struct{}{}
		}
	}

	check(t, "section", stringsOf(SectionKinds()))
	check(t, "query", stringsOf(QueryKinds()))
	check(t, "filter", stringsOf(FilterKinds()))
	check(t, "predicate", stringsOf(PredicateKinds()))
	check(t, "predicate value", stringsOf(PredicateValueKinds()))
	check(t, "bytes", stringsOf(BytesKinds()))
	check(t, "option", stringsOf(OptionKinds()))
}

func TestOptionKindsHaveFamily(t *testing.T) {
	for _, k := range OptionKinds() {
		if _, ok := k.Family(); !ok {
			t.Fatalf("option %s has no value family", k)
		}
	}
	if _, ok := OptionKind(-1).Family(); ok {
		t.Fatalf("expected no family for an out of range kind")
	}
}

func TestIdentifiersMatchGrammar(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{QueryRegex.String(), "regex"},
		{QueryJSONPath.String(), "jsonpath"},
		{PredicateMatch.String(), "matches"},
		{PredicateLessThanOrEqual.String(), "<="},
		{PredicateExist.String(), "exists"},
		{FilterToFloat.String(), "toFloat"},
		{FilterBase64URLSafeDecode.String(), "base64UrlSafeDecode"},
		{OptionMaxRedirect.String(), "max-redirs"},
		{OptionHTTP10.String(), "http1.0"},
		{OptionVariableDef.String(), "variable"},
		{CertificateExpireDate.String(), "Expire-Date"},
		{Version2.String(), "HTTP/2"},
		{VersionAny.String(), "HTTP"},
		{DurationMillisecond.String(), "ms"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("expected identifier %q, got %q", tc.want, tc.got)
		}
	}
}

func TestSectionIdentifierShortForms(t *testing.T) {
	cases := []struct {
		value SectionValue
		want  string
	}{
		{SectionValue{Kind: SectionQueryParams}, "QueryStringParams"},
		{SectionValue{Kind: SectionQueryParams, Short: true}, "Query"},
		{SectionValue{Kind: SectionFormParams, Short: true}, "Form"},
		{SectionValue{Kind: SectionMultipartFormData, Short: true}, "Multipart"},
		{SectionValue{Kind: SectionMultipartFormData}, "MultipartFormData"},
		{SectionValue{Kind: SectionCaptures, Short: true}, "Captures"},
	}
	for _, tc := range cases {
		got := Section{Value: tc.value}.Identifier()
		if got != tc.want {
			t.Fatalf("expected section identifier %q, got %q", tc.want, got)
		}
	}
}

func TestPredicateHasValue(t *testing.T) {
	if !PredicateMatch.HasValue() || !PredicateEqual.HasValue() {
		t.Fatalf("expected comparison predicates to take a value")
	}
	if PredicateIsInteger.HasValue() || PredicateIsIPv6.HasValue() {
		t.Fatalf("expected type predicates to take no value")
	}
}

func TestUnknownKindString(t *testing.T) {
	if got := QueryKind(99).String(); got != "QueryKind(99)" {
		t.Fatalf("unexpected unknown kind name %q", got)
	}
}

func stringsOf[K interface{ String() string }](ks []K) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}
