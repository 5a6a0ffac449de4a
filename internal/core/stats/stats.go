// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

// Stats is the transient catalog aggregate served by GET /stats.
//
// It is never persisted — only computed on demand and cached briefly.
// Technologies counts distinct tag names across all guides: a tag name used
// by several guides counts once.
type Stats struct {
	Guides       int `json:"guides"`
	Categories   int `json:"categories"`
	Technologies int `json:"technologies"`
}
