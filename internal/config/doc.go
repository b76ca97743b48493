// Package config loads the optional YAML configuration of studyindex.
//
// Every field is optional; an absent or empty value keeps the built-in
// default. Example:
//
//	assetsDir: assert
//	extension: .pdf
//	icons:
//	  default: folder
//	  map:
//	    chemistry: flask
//	page:
//	  title: 学习经验分享
//	  comments: true
//	  template: main.html
package config
