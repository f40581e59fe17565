// Package forumstats extracts structured per-post records from archived
// XenForo thread pages and checks each post's prose against the forum's
// writing-style rules. One record per message is produced: author, timestamp,
// reaction and quote counts, mention and emoji inventories, canonicalized
// content text and a pass/fail verdict with the rules that were broken.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, dateparse/, fs/).
package forumstats
