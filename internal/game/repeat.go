package game

// keyRepeat turns a polled key state into discrete presses: one on the
// initial press, then one every interval once the key has been held
// longer than delay.
type keyRepeat struct {
	delay, interval float64

	down bool
	next float64
}

func (k *keyRepeat) update(down bool, now float64) bool {
	if !down {
		k.down = false
		return false
	}
	if !k.down {
		k.down = true
		k.next = now + k.delay
		return true
	}
	if now >= k.next {
		k.next += k.interval
		if k.next < now {
			k.next = now + k.interval
		}
		return true
	}
	return false
}
