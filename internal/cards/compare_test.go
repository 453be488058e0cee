package cards

import "testing"

func TestCompareWizardAlwaysWins(t *testing.T) {
	wiz := WizardCard()
	challenger := NewCard(Blue, 13)
	if Compare(wiz, challenger, Blue) {
		t.Errorf("challenger should not beat a standing Wizard")
	}
	if !Compare(challenger, wiz, Blue) {
		t.Errorf("a Wizard challenger should beat any standing card")
	}
}

func TestCompareJesterLoses(t *testing.T) {
	jester := Jester()
	challenger := NewCard(Green, 2)
	if !Compare(jester, challenger, Green) {
		t.Errorf("any non-Jester should beat a standing Jester")
	}
}

func TestCompareJesterVsJesterFirstStands(t *testing.T) {
	a := Jester()
	b := Jester()
	if Compare(a, b, Blue) {
		t.Errorf("second Jester should not beat the first")
	}
}

func TestCompareTrumpBeatsOffSuit(t *testing.T) {
	lead := NewCard(Blue, 2)
	trumpCard := NewCard(Red, 3)
	if !Compare(lead, trumpCard, Red) {
		t.Errorf("trump should beat off-suit lead")
	}
	if Compare(trumpCard, lead, Red) {
		t.Errorf("off-suit should not beat standing trump")
	}
}

func TestCompareOffSuitCannotBeat(t *testing.T) {
	lead := NewCard(Blue, 2)
	offSuit := NewCard(Green, 13)
	if Compare(lead, offSuit, Yellow) {
		t.Errorf("off-suit challenger (non-trump) should never beat the lead-color holder")
	}
}

func TestCompareSameColorHigherWins(t *testing.T) {
	a := NewCard(Blue, 5)
	b := NewCard(Blue, 9)
	if !Compare(a, b, Green) {
		t.Errorf("higher same-color value should win")
	}
	if Compare(b, a, Green) {
		t.Errorf("lower same-color value should not win")
	}
}

func TestCompareTieResolvesToA(t *testing.T) {
	// Unreachable in legal play (each normal card exists once), but Compare
	// must still resolve deterministically rather than flip a coin.
	a := NewCard(Blue, 5)
	b := NewCard(Blue, 5)
	if Compare(a, b, Green) {
		t.Errorf("tie should resolve to a (earlier play)")
	}
}

func TestFoldFirstWizardWins(t *testing.T) {
	plays := []Card{
		NewCard(Blue, 3),
		WizardCard(),
		NewCard(Blue, 13),
		WizardCard(),
	}
	if got := Fold(plays, Blue); got != 1 {
		t.Errorf("Fold = %d, want 1 (first Wizard)", got)
	}
}

func TestFoldAllJestersFirstWins(t *testing.T) {
	plays := []Card{Jester(), Jester(), Jester()}
	if got := Fold(plays, Blue); got != 0 {
		t.Errorf("Fold = %d, want 0 (first Jester stands when all are Jesters)", got)
	}
}

func TestFoldLeadJesterBeatenByFirstNonJester(t *testing.T) {
	plays := []Card{Jester(), NewCard(Red, 5), NewCard(Blue, 2)}
	// Red, leading color established by the first non-Jester, is not trump;
	// Blue does not match Red so it cannot beat it.
	if got := Fold(plays, Green); got != 1 {
		t.Errorf("Fold = %d, want 1 (Red 5, the first non-Jester)", got)
	}
}
