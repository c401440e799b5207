// Package ipp implements the IPP attribute/collection data model and its
// binary wire codec (RFC 8010/8011 tag-length-value framing).
//
// A Frame is built in memory through Collection.AddAttr and friends,
// serialized with Frame.SaveToBuffer, and reconstructed from untrusted
// bytes with Parse. Parse is fault tolerant: local anomalies are dropped
// and logged per value, structural damage yields a partial frame, and no
// input of any shape can make it panic. Validate is a separate read-only
// pass applying the RFC value constraints the parser does not enforce.
//
// Everything here is synchronous and single-threaded; a Frame and its
// collections are not safe for concurrent mutation.
package ipp
