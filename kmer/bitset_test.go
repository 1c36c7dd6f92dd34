package kmer

import "testing"

func TestBitsetSetCheck(t *testing.T) {
	bs := NewBitset(100)
	if bs.Check(5) {
		t.Error("bit 5 should start unset")
	}
	if bs.Set(5) {
		t.Error("first Set should report not already set")
	}
	if !bs.Check(5) {
		t.Error("bit 5 should be set now")
	}
	if !bs.Set(5) {
		t.Error("second Set should report already set")
	}
}

func TestBitsetMSBFirstConvention(t *testing.T) {
	bs := NewBitset(16)
	bs.Set(0)
	if bs.bits[0] != 0x80 {
		t.Errorf("bit 0 should be the MSB of byte 0, got %08b", bs.bits[0])
	}
	bs.Set(7)
	if bs.bits[0] != 0x81 {
		t.Errorf("bit 7 should be the LSB of byte 0, got %08b", bs.bits[0])
	}
}

func TestBitsetSizeRounding(t *testing.T) {
	bs := NewBitset(9)
	if bs.byteSize != 2 {
		t.Errorf("9 bits should need 2 bytes, got %d", bs.byteSize)
	}
	bs2 := NewBitset(16)
	if bs2.byteSize != 2 {
		t.Errorf("16 bits should need exactly 2 bytes, got %d", bs2.byteSize)
	}
}
