package rate

// ValidateRows rejects overlapping rows within one scheme's table: two rows
// whose validity windows intersect must not share any salary. Enforced at
// write time so the resolver's tie-break stays a defensive path.
func ValidateRows(rows []Row) error {
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			a, b := rows[i], rows[j]
			if a.Scheme != b.Scheme || a.OrganizationID != b.OrganizationID {
				continue
			}
			if !windowsIntersect(a, b) {
				continue
			}
			if salaryBandsIntersect(a, b) {
				return &OverlapError{Scheme: a.Scheme, RowA: a.ID, RowB: b.ID}
			}
		}
	}
	return nil
}

func windowsIntersect(a, b Row) bool {
	// a ends before b starts
	if a.EffectiveTo != nil && a.EffectiveTo.Before(b.EffectiveFrom) {
		return false
	}
	// b ends before a starts
	if b.EffectiveTo != nil && b.EffectiveTo.Before(a.EffectiveFrom) {
		return false
	}
	return true
}

func salaryBandsIntersect(a, b Row) bool {
	if a.MaxSalary != nil && a.MaxSalary.LessThan(b.MinSalary) {
		return false
	}
	if b.MaxSalary != nil && b.MaxSalary.LessThan(a.MinSalary) {
		return false
	}
	return true
}
