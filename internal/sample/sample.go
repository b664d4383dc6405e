// Package sample holds a small Hurl document used for previews.
package sample

import (
	"github.com/MakeNowJust/heredoc"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
)

// Source is the text Document was parsed from.
var Source = heredoc.Doc(`
	# Fetch a user
	GET https://api.example.com/users/{{id}}?verbose=true&lang=en
	Accept: application/json
	[Options]
	retry: 3
	delay: 200ms
	[Query]
	page: 1

	HTTP 200
	[Captures]
	token: jsonpath "$.token" redact
	[Asserts]
	header "Content-Type" contains "json"
	jsonpath "$.age" toFloat <= 99.5
	jsonpath "$.name" not matches /^\d+$/
`)

func Document() ast.Document {
	ms := ast.DurationMillisecond
	sp := ast.Space(" ")
	return ast.Document{
		Entries: []ast.Entry{{
			Request: ast.Request{
				LineTerminators: []ast.LineTerminator{ast.CommentLine(" Fetch a user")},
				Method:          "GET",
				Space1:          sp,
				URL: ast.Join(
					"https://api.example.com/users/",
					ast.Variable("id"),
					"?verbose=true&lang=en",
				),
				LineTerminator0: ast.Newline(),
				Headers: []ast.KeyValue{
					keyValue("Accept", "application/json"),
				},
				Sections: []ast.Section{
					section(ast.SectionValue{
						Kind: ast.SectionOptions,
						Options: []ast.EntryOption{
							{
								Kind:            ast.OptionRetry,
								Space2:          sp,
								Value:           ast.OptionValue{Count: ast.CountOption{Literal: ast.Count{Value: 3}}},
								LineTerminator0: ast.Newline(),
							},
							{
								Kind:   ast.OptionDelay,
								Space2: sp,
								Value: ast.OptionValue{Duration: ast.DurationOption{
									Literal: ast.Duration{Value: ast.U64{Value: 200, Source: "200"}, Unit: &ms},
								}},
								LineTerminator0: ast.Newline(),
							},
						},
					}),
					section(ast.SectionValue{
						Kind:   ast.SectionQueryParams,
						Short:  true,
						Params: []ast.KeyValue{keyValue("page", "1")},
					}),
				},
			},
			Response: &ast.Response{
				LineTerminators: []ast.LineTerminator{ast.Newline()},
				Version:         ast.Version{Value: ast.VersionAny},
				Space1:          sp,
				Status:          ast.Status{Code: 200},
				LineTerminator0: ast.Newline(),
				Sections: []ast.Section{
					section(ast.SectionValue{
						Kind: ast.SectionCaptures,
						Captures: []ast.Capture{{
							Name:            ast.Literal("token"),
							Space2:          sp,
							Query:           query(ast.QueryJSONPath, "$.token"),
							Space3:          sp,
							Redact:          true,
							LineTerminator0: ast.Newline(),
						}},
					}),
					section(ast.SectionValue{
						Kind: ast.SectionAsserts,
						Asserts: []ast.Assert{
							{
								Query:  query(ast.QueryHeader, "Content-Type"),
								Space1: sp,
								Predicate: predicate(false, ast.PredicateContain, ast.PredicateValue{
									Kind:   ast.PredicateValueString,
									String: ast.Quoted("json"),
								}),
								LineTerminator0: ast.Newline(),
							},
							{
								Query: query(ast.QueryJSONPath, "$.age"),
								Filters: []ast.FilterStep{{
									Space:  sp,
									Filter: ast.Filter{Value: ast.FilterValue{Kind: ast.FilterToFloat}},
								}},
								Space1: sp,
								Predicate: predicate(false, ast.PredicateLessThanOrEqual, ast.PredicateValue{
									Kind: ast.PredicateValueNumber,
									Number: ast.Number{
										Kind:  ast.NumberFloat,
										Float: ast.Float{Value: 99.5, Source: "99.5"},
									},
								}),
								LineTerminator0: ast.Newline(),
							},
							{
								Query:  query(ast.QueryJSONPath, "$.name"),
								Space1: sp,
								Predicate: predicate(true, ast.PredicateMatch, ast.PredicateValue{
									Kind:  ast.PredicateValueRegex,
									Regex: ast.Regex{Value: `^\d+$`, Source: `/^\d+$/`},
								}),
								LineTerminator0: ast.Newline(),
							},
						},
					}),
				},
			},
		}},
	}
}

func keyValue(key, value string) ast.KeyValue {
	return ast.KeyValue{
		Key:             ast.Literal(key),
		Space2:          ast.Space(" "),
		Value:           ast.Literal(value),
		LineTerminator0: ast.Newline(),
	}
}

func section(v ast.SectionValue) ast.Section {
	return ast.Section{LineTerminator0: ast.Newline(), Value: v}
}

func query(kind ast.QueryKind, arg string) ast.Query {
	return ast.Query{Value: ast.QueryValue{Kind: kind, Space0: ast.Space(" "), Name: ast.Quoted(arg)}}
}

func predicate(not bool, kind ast.PredicateKind, v ast.PredicateValue) ast.Predicate {
	p := ast.Predicate{
		Not:  not,
		Func: ast.PredicateFunc{Value: ast.PredicateFuncValue{Kind: kind, Space0: ast.Space(" "), Value: v}},
	}
	if not {
		p.Space0 = ast.Space(" ")
	}
	return p
}
