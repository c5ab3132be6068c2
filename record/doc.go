// Package record applies column converters to whole records.
//
// A Transformer plans all feature columns once, then encodes records one at
// a time (Transform) or in parallel batches with bounded workers
// (TransformAll). Reader and Writer stream records as JSON Lines, the format
// of the featenc command:
//
//	{"country":"us","tags":["a","b"],"terms":[{"name":"title","term":"go","value":0.5}]}
//
// Columns without a spec pass through untouched.
package record
