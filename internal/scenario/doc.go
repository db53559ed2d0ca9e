// Package scenario loads collection scenarios from YAML or TOML files.
//
// A scenario describes a layout, the bounds it is prepared against, the
// sections of a static data source and optionally a batch of updates with
// the sections the data source holds afterwards:
//
//	layout:
//	  kind: flow
//	  item_size: {width: 50, height: 50}
//	  insets: {top: 10, left: 10, bottom: 10, right: 10}
//	bounds: {width: 120, height: 480}
//	sections:
//	  - count: 5
//	updates:
//	  - {op: delete item, from: "0,2"}
//	  - {op: insert item, to: "0,0"}
//	after:
//	  - count: 5
//
// The format is picked by file extension.
package scenario
