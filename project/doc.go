// Package project interprets a texcore build directory.
//
// A build directory holds a template and a build.yaml (or build.json)
// manifest saying where the rendered files go:
//
//	build:
//	  template: report.json
//	  destDir: out
//	  split: true
//	  pdf: report.pdf
//	  env:
//	    quarter: Q3
//	  metadata:
//	    title: '.["Report " + quarter]'
//	    date: '.[getenv("REPORT_DATE")]'
//
// Metadata values of the form .[expr] are evaluated with expr-lang against
// the environment. Everything else is taken literally. Expressions only
// produce metadata; element text is never evaluated.
package project
