// Package entity provides the player and the monsters they fight.
package entity

// Stats is the health/attack/defense block shared by every combatant.
type Stats struct {
	HP, MaxHP int
	Attack    int
	Defense   int
}

// IsAlive returns true while HP remains.
func (s *Stats) IsAlive() bool { return s.HP > 0 }

// GetHP returns current HP.
func (s *Stats) GetHP() int { return s.HP }

// GetMaxHP returns maximum HP.
func (s *Stats) GetMaxHP() int { return s.MaxHP }

// GetAttack returns attack stat.
func (s *Stats) GetAttack() int { return s.Attack }

// GetDefense returns defense stat.
func (s *Stats) GetDefense() int { return s.Defense }

// TakeDamage reduces HP by the incoming amount less defense, never by less
// than 1, and returns the damage actually dealt. HP may drop below zero.
func (s *Stats) TakeDamage(amount int) int {
	actual := max(1, amount-s.Defense)
	s.HP -= actual
	return actual
}

// Heal restores HP up to MaxHP and returns the amount healed.
func (s *Stats) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.HP
	s.HP = min(s.MaxHP, s.HP+amount)
	if s.HP < 0 {
		s.HP = 0
	}
	return s.HP - before
}
