package domain

// MaxAlerts caps the bulletin's alert section. The NWS feed repeats one
// condition per affected zone, so an active storm can produce dozens of
// identical headlines; twelve distinct ones is plenty for a chat bulletin.
const MaxAlerts = 12

// DedupeHeadlines removes exact-duplicate headlines in a single pass,
// preserving first-seen order, and truncates the result at MaxAlerts.
// Idempotent: deduping an already-deduped list is a no-op.
func DedupeHeadlines(headlines []string) []string {
	seen := make(map[string]struct{}, len(headlines))
	out := make([]string, 0, min(len(headlines), MaxAlerts))
	for _, h := range headlines {
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
		if len(out) == MaxAlerts {
			break
		}
	}
	return out
}
