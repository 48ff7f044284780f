package parallel

// Strip is a contiguous range of destination rows processed by one work
// item. Y0 is inclusive, Y1 exclusive.
type Strip struct {
	Y0, Y1 int
}

// Strips divides height rows into at most n contiguous strips of
// near-equal size. Strips are never empty; fewer than n strips are
// returned when height < n.
func Strips(height, n int) []Strip {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}

	strips := make([]Strip, 0, n)
	base := height / n
	extra := height % n

	y := 0
	for i := 0; i < n; i++ {
		rows := base
		if i < extra {
			rows++
		}
		strips = append(strips, Strip{Y0: y, Y1: y + rows})
		y += rows
	}
	return strips
}
