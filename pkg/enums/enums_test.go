package enums

import "testing"

func TestParseMerchType(t *testing.T) {
	t.Parallel()

	if got, err := ParseMerchType("hoodie"); err != nil || got != MerchTypeHoodie {
		t.Fatalf("expected hoodie, got %q err %v", got, err)
	}
	if _, err := ParseMerchType("onesie"); err == nil {
		t.Fatal("expected error for unknown merch type")
	}
}

func TestZonesForHatIsFrontOnly(t *testing.T) {
	t.Parallel()

	zones := ZonesFor(MerchTypeHat)
	if len(zones) != 1 || zones[0] != PlacementZoneFront {
		t.Fatalf("expected hat to expose front only, got %v", zones)
	}
}

func TestZonesForReturnsCopy(t *testing.T) {
	t.Parallel()

	zones := ZonesFor(MerchTypeTShirt)
	zones[0] = PlacementZoneSide

	again := ZonesFor(MerchTypeTShirt)
	if again[0] != PlacementZoneFront {
		t.Fatal("ZonesFor must not expose internal table state")
	}
}

func TestZoneAllowed(t *testing.T) {
	t.Parallel()

	if !ZoneAllowed(MerchTypeTShirt, PlacementZoneBack) {
		t.Fatal("tshirt should allow back zone")
	}
	if ZoneAllowed(MerchTypeHat, PlacementZoneBack) {
		t.Fatal("hat should not allow back zone")
	}
	if ZoneAllowed(MerchTypeTrouser, PlacementZoneBack) {
		t.Fatal("trouser should not allow back zone")
	}
}

func TestGarmentSizeIsValid(t *testing.T) {
	t.Parallel()

	if !GarmentSizeXXL.IsValid() {
		t.Fatal("XXL should be valid")
	}
	if GarmentSize("XS").IsValid() {
		t.Fatal("XS is outside the closed size set")
	}
}

func TestParsePlacementZone(t *testing.T) {
	t.Parallel()

	if got, err := ParsePlacementZone("side"); err != nil || got != PlacementZoneSide {
		t.Fatalf("expected side, got %q err %v", got, err)
	}
	if _, err := ParsePlacementZone("sleeve"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestParseDesignStatus(t *testing.T) {
	t.Parallel()

	if got, err := ParseDesignStatus("pending_approval"); err != nil || got != DesignStatusPendingApproval {
		t.Fatalf("expected pending_approval, got %q err %v", got, err)
	}
	if _, err := ParseDesignStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
