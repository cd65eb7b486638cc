package storage_test

import (
	"bytes"
	"testing"

	"financaspro/internal/testutil"
)

func TestGormGateway(t *testing.T) {
	t.Run("load_of_missing_key_reports_absence", func(t *testing.T) {
		gateway := testutil.SetupTestGateway(t)

		payload, found, err := gateway.Load("no-such-key")
		testutil.AssertNoError(t, err)

		if found {
			t.Error("expected missing key to report absence")
		}
		if payload != nil {
			t.Errorf("expected nil payload, got %v", payload)
		}
	})

	t.Run("save_then_load_round_trips", func(t *testing.T) {
		gateway := testutil.SetupTestGateway(t)

		want := []byte(`{"schema_version":1,"records":[]}`)
		testutil.AssertNoError(t, gateway.Save("financas_pro_data", want))

		got, found, err := gateway.Load("financas_pro_data")
		testutil.AssertNoError(t, err)

		if !found {
			t.Fatal("expected key to be found")
		}
		if !bytes.Equal(got, want) {
			t.Errorf("expected payload %s, got %s", want, got)
		}
	})

	t.Run("save_overwrites_existing_payload", func(t *testing.T) {
		gateway := testutil.SetupTestGateway(t)

		testutil.AssertNoError(t, gateway.Save("financas_pro_fixed", []byte("old")))
		testutil.AssertNoError(t, gateway.Save("financas_pro_fixed", []byte("new")))

		got, found, err := gateway.Load("financas_pro_fixed")
		testutil.AssertNoError(t, err)

		if !found || !bytes.Equal(got, []byte("new")) {
			t.Errorf("expected overwritten payload, got %s (found=%v)", got, found)
		}
	})

	t.Run("keys_are_independent", func(t *testing.T) {
		gateway := testutil.SetupTestGateway(t)

		testutil.AssertNoError(t, gateway.Save("financas_pro_data", []byte("transactions")))
		testutil.AssertNoError(t, gateway.Save("financas_pro_fixed", []byte("bills")))

		got, _, err := gateway.Load("financas_pro_data")
		testutil.AssertNoError(t, err)

		if !bytes.Equal(got, []byte("transactions")) {
			t.Errorf("expected transactions payload untouched, got %s", got)
		}
	})
}
