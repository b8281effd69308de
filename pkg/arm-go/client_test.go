// Copyright (c) 2022 Cisco Systems, Inc. and its affiliates
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package armgo_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	armgo "github.com/CloudNativeSDWAN/armwire/pkg/arm-go"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	dm "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datamigration"
	dr "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datareplication"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/ptr"
)

const vaultsPath = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataReplication/replicationVaults"

type staticCredential struct{}

func (staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

// recorder keeps the requests a test server received.
type recorder struct {
	lock     sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (r *recorder) record(req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.lock.Lock()
	defer r.lock.Unlock()
	r.requests = append(r.requests, req.Clone(context.Background()))
	r.bodies = append(r.bodies, string(body))
}

func (r *recorder) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.requests)
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*armgo.Client, *httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := armgo.NewClient("sub", staticCredential{},
		armgo.WithEndpoint(server.URL),
		armgo.WithHTTPClient(server.Client()),
		armgo.WithRetryDelay(time.Millisecond),
	)
	require.NoError(t, err)

	return client, server, rec
}

func TestNewClient(t *testing.T) {
	cases := []struct {
		name           string
		subscriptionID string
		credential     azcore.TokenCredential
		opts           []armgo.ClientOption
		expErr         error
	}{
		{
			name:       "no subscription",
			credential: staticCredential{},
			expErr:     verrors.ErrorNoSubscriptionID,
		},
		{
			name:           "no credential",
			subscriptionID: "sub",
			expErr:         verrors.ErrorNoCredential,
		},
		{
			name:           "defaults",
			subscriptionID: "sub",
			credential:     staticCredential{},
		},
		{
			name:           "all options",
			subscriptionID: "sub",
			credential:     staticCredential{},
			opts: []armgo.ClientOption{
				armgo.WithEndpoint("https://management.usgovcloudapi.net"),
				armgo.WithSkipInsecure(),
				armgo.WithMaxAttempts(2),
				armgo.WithPollInterval(time.Second),
				armgo.WithUserAgent("test"),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client, err := armgo.NewClient(c.subscriptionID, c.credential, c.opts...)
			if c.expErr != nil {
				assert.ErrorIs(t, err, c.expErr)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.subscriptionID, client.SubscriptionID())
		})
	}

	_, err := armgo.NewClient("sub", staticCredential{}, armgo.WithEndpoint("not-a-url"))
	assert.Error(t, err)
}

func TestVaultsListFollowsNextLink(t *testing.T) {
	var server *httptest.Server
	client, server, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("$skiptoken") {
		case "":
			fmt.Fprintf(w, `{"value":[{"name":"v1"},{"name":"v2"}],"nextLink":"%s%s?api-version=%s&$skiptoken=2"}`,
				server.URL, vaultsPath, dr.APIVersion)
		default:
			w.Write([]byte(`{"value":[{"name":"v3"}],"nextLink":""}`))
		}
	})

	vaults, err := client.Vaults("rg").List(&armgo.ListOptions{Top: 2}).All(context.Background())
	require.NoError(t, err)

	names := []string{}
	for _, v := range vaults {
		names = append(names, ptr.ToString(v.Name))
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, names)

	require.Equal(t, 2, rec.count())
	first := rec.requests[0]
	assert.Equal(t, vaultsPath, first.URL.Path)
	assert.Equal(t, dr.APIVersion, first.URL.Query().Get("api-version"))
	assert.Equal(t, "2", first.URL.Query().Get("$top"))
	assert.Equal(t, "Bearer token", first.Header.Get("Authorization"))

	second := rec.requests[1]
	assert.Equal(t, "2", second.URL.Query().Get("$skiptoken"))
	assert.Empty(t, second.URL.Query().Get("$top"))
}

func TestVaultsListStopsOnLoop(t *testing.T) {
	var server *httptest.Server
	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"value":[{"name":"v1"}],"nextLink":"%s%s?$skiptoken=1"}`, server.URL, vaultsPath)
	})

	_, err := client.Vaults("rg").List(nil).All(context.Background())
	assert.ErrorIs(t, err, verrors.ErrorPagerLoop)
}

func TestGetNotFound(t *testing.T) {
	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"ResourceNotFound","message":"vault v9 not found"}}`))
	})

	vault, err := client.Vaults("rg").Get(context.Background(), "v9")
	assert.Nil(t, vault)
	require.ErrorIs(t, err, verrors.ErrorNotFound)

	cloudErr, ok := verrors.AsCloudError(err)
	require.True(t, ok)
	assert.Equal(t, "ResourceNotFound", cloudErr.Code)
	assert.Equal(t, vaultsPath+"/v9", rec.requests[0].URL.Path)
}

func TestMissingPathSegments(t *testing.T) {
	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	_, err := client.Vaults("").Get(ctx, "v1")
	assert.ErrorIs(t, err, verrors.ErrorNoResourceGroup)

	_, err = client.Policies("rg", "").List(nil).NextPage(ctx)
	assert.ErrorIs(t, err, verrors.ErrorNoNameProvided)

	_, err = client.Fabrics("rg").Get(ctx, "")
	assert.ErrorIs(t, err, verrors.ErrorNoNameProvided)

	_, _, err = client.Tasks("rg", "dms", "").CreateOrUpdate(ctx, "t1", &dm.ProjectTask{})
	assert.ErrorIs(t, err, verrors.ErrorNoNameProvided)

	assert.Zero(t, rec.count())
}

func TestNamesMustBeSingleSegments(t *testing.T) {
	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	for _, name := range []string{"../../x", "a/b", "..", ".", `a\b`} {
		_, err := client.Fabrics("rg").Get(ctx, name)
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)

		_, err = client.Fabrics("rg").Delete(ctx, name)
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)

		_, _, err = client.Fabrics("rg").CreateOrUpdate(ctx, name, &dr.FabricModel{})
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)

		_, _, err = client.ProtectedItems("rg", "v1").PlannedFailover(ctx, name, &dr.PlannedFailoverModel{})
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)

		_, err = client.Vaults(name).Get(ctx, "v1")
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)

		_, err = client.Policies("rg", name).List(nil).NextPage(ctx)
		assert.ErrorIs(t, err, verrors.ErrorInvalidName, name)
	}

	_, err := armgo.NewClient("../sub", staticCredential{})
	assert.ErrorIs(t, err, verrors.ErrorInvalidName)

	assert.Zero(t, rec.count())
}

func TestDecodeErrorsKeepTheirCause(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataReplication/replicationFabrics/f1":
			w.Write([]byte(`{"name":"f1","properties":{"customProperties":{"instanceType":"SomethingElse"}}}`))
		default:
			w.Write([]byte(`{"name":"pi1","properties":{"replicationExtensionName":"e","customProperties":{"instanceType":"VMwareToAzStackHCI"}}}`))
		}
	})
	ctx := context.Background()

	_, err := client.Fabrics("rg").Get(ctx, "f1")
	require.Error(t, err)
	assert.ErrorIs(t, err, verrors.ErrorUnmarshallingBody)
	assert.ErrorIs(t, err, verrors.ErrorUnknownDiscriminator)

	var discErr *verrors.DiscriminatorError
	require.True(t, errors.As(err, &discErr))
	assert.Equal(t, "SomethingElse", discErr.Value)

	_, err = client.ProtectedItems("rg", "v1").Get(ctx, "pi1")
	assert.ErrorIs(t, err, verrors.ErrorUnmarshallingBody)
	assert.ErrorIs(t, err, verrors.ErrorMissingField)

	_, err = client.Raw().Get(ctx, vaultsPath+"/v1/protectedItems/pi1")
	assert.ErrorIs(t, err, verrors.ErrorUnmarshallingBody)

	var fieldErr *verrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "policyName", fieldErr.Field)

	_, _, err = client.Fabrics("rg").CreateOrUpdate(ctx, "f2", &dr.FabricModel{
		TrackedResource: arm.TrackedResource{Location: ptr.String("westeurope")},
		Properties:      &dr.FabricModelProperties{},
	})
	assert.ErrorIs(t, err, verrors.ErrorMarshallingData)
	assert.ErrorIs(t, err, verrors.ErrorMissingField)
}

func TestFabricCreateOrUpdate(t *testing.T) {
	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"name": "f1",
			"location": "westus",
			"properties": {
				"provisioningState": "Creating",
				"customProperties": {"instanceType": "HyperVMigrate", "hyperVSiteId": "site", "migrationSolutionId": "sol"}
			}
		}`))
	})
	ctx := context.Background()

	fabric := &dr.FabricModel{
		Properties: &dr.FabricModelProperties{
			CustomProperties: &dr.HyperVMigrateFabricModelCustomProperties{
				HyperVSiteID:        "site",
				MigrationSolutionID: "sol",
			},
		},
	}

	_, _, err := client.Fabrics("rg").CreateOrUpdate(ctx, "f1", fabric)
	assert.ErrorIs(t, err, verrors.ErrorMissingField)
	assert.Zero(t, rec.count())

	fabric.Location = ptr.To("westus")
	created, op, err := client.Fabrics("rg").CreateOrUpdate(ctx, "f1", fabric)
	require.NoError(t, err)
	assert.Nil(t, op)
	require.NotNil(t, created)
	assert.Equal(t, dr.ProvisioningStateCreating, *created.Properties.ProvisioningState)
	assert.IsType(t, &dr.HyperVMigrateFabricModelCustomProperties{}, created.Properties.CustomProperties)

	require.Equal(t, 1, rec.count())
	assert.Equal(t, http.MethodPut, rec.requests[0].Method)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.bodies[0]), &sent))
	custom := sent["properties"].(map[string]any)["customProperties"].(map[string]any)
	assert.Equal(t, "HyperVMigrate", custom["instanceType"])
}

func TestPlannedFailoverAndWait(t *testing.T) {
	var (
		server *httptest.Server
		polls  int
	)
	client, server, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/operations/op1":
			polls++
			if polls < 2 {
				w.Write([]byte(`{"name":"op1","status":"InProgress"}`))
				return
			}
			w.Write([]byte(`{"name":"op1","status":"Succeeded","percentComplete":100}`))
		case "/results/op1":
			w.Write([]byte(`{"properties":{"customProperties":{"instanceType":"HyperVToAzStackHCI","shutdownSourceVM":true}}}`))
		default:
			w.Header().Set("Azure-AsyncOperation", server.URL+"/operations/op1")
			w.Header().Set("Location", server.URL+"/results/op1")
			w.WriteHeader(http.StatusAccepted)
		}
	})
	ctx := context.Background()

	failover := &dr.PlannedFailoverModel{
		Properties: dr.PlannedFailoverModelProperties{
			CustomProperties: &dr.HyperVToAzStackHCIPlannedFailoverModelCustomProperties{ShutdownSourceVM: true},
		},
	}

	result, op, err := client.ProtectedItems("rg", "v1").PlannedFailover(ctx, "pi1", failover)
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, op)

	assert.Equal(t, http.MethodPost, rec.requests[0].Method)
	assert.Equal(t, vaultsPath+"/v1/protectedItems/pi1/plannedFailover", rec.requests[0].URL.Path)
	assert.JSONEq(t, `{"properties":{"customProperties":{"instanceType":"HyperVToAzStackHCI","shutdownSourceVM":true}}}`, rec.bodies[0])

	status, err := client.Operations().Wait(ctx, op, armgo.WaitOptions{Duration: 5 * time.Millisecond})
	require.NoError(t, err)
	assert.True(t, status.Succeeded())
	assert.Equal(t, 2, polls)

	var done dr.PlannedFailoverModel
	require.NoError(t, client.Operations().GetResult(ctx, op, &done))
	custom, ok := done.Properties.CustomProperties.(*dr.HyperVToAzStackHCIPlannedFailoverModelCustomProperties)
	require.True(t, ok)
	assert.True(t, custom.ShutdownSourceVM)
}

func TestWaitFailedOperation(t *testing.T) {
	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"Failed","error":{"code":"FailoverFailed","message":"source is unreachable"}}`))
	})

	op := &armgo.Operation{AsyncOperationURL: server.URL + "/operations/op2"}
	status, err := client.Operations().Wait(context.Background(), op, armgo.WaitOptions{Duration: time.Millisecond})
	require.ErrorIs(t, err, verrors.ErrorOperationFailed)
	assert.Equal(t, arm.OperationStateFailed, status.Status)

	cloudErr, ok := verrors.AsCloudError(err)
	require.True(t, ok)
	assert.Equal(t, "FailoverFailed", cloudErr.Code)
}

func TestWaitLocationOnly(t *testing.T) {
	var calls int
	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	op := &armgo.Operation{LocationURL: server.URL + "/results/op3"}
	status, err := client.Operations().Wait(context.Background(), op, armgo.WaitOptions{Duration: time.Millisecond})
	require.NoError(t, err)
	assert.True(t, status.Succeeded())
	assert.Equal(t, 3, calls)
}

func TestWaitContextCanceled(t *testing.T) {
	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"InProgress"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	op := &armgo.Operation{AsyncOperationURL: server.URL + "/operations/op4"}
	_, err := client.Operations().Wait(ctx, op, armgo.WaitOptions{Duration: time.Millisecond})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	status, err := client.Operations().Wait(context.Background(), nil, armgo.WaitOptions{})
	require.NoError(t, err)
	assert.True(t, status.Succeeded())

	_, err = client.Operations().Get(context.Background(), &armgo.Operation{})
	assert.ErrorIs(t, err, verrors.ErrorNoOperationURL)
}

func TestTasks(t *testing.T) {
	const tasksPath = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataMigration/services/dms/projects/p1/tasks"

	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			w.Write([]byte(`{"name":"t1","properties":{"taskType":"GetUserTables.Sql","state":"Canceled"}}`))
		}
	})
	ctx := context.Background()
	tasks := client.Tasks("rg", "dms", "p1")

	task, err := tasks.Cancel(ctx, "t1")
	require.NoError(t, err)
	common := task.Properties.GetProjectTaskCommon()
	assert.Equal(t, dm.TaskStateCanceled, *common.State)
	assert.True(t, common.State.IsTerminal())
	assert.Equal(t, tasksPath+"/t1/cancel", rec.requests[0].URL.Path)
	assert.Equal(t, dm.APIVersion, rec.requests[0].URL.Query().Get("api-version"))

	op, err := tasks.Delete(ctx, "t1", &armgo.DeleteOptions{DeleteRunningTasks: true})
	require.NoError(t, err)
	assert.Nil(t, op)
	assert.Equal(t, "true", rec.requests[1].URL.Query().Get("deleteRunningTasks"))

	_, err = client.Projects("rg", "dms").Delete(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, rec.requests[2].URL.Query().Get("deleteRunningTasks"))
}

func TestListAllServices(t *testing.T) {
	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":[{"name":"dms","location":"westus","properties":{"provisioningState":"Succeeded"}}]}`))
	})

	services, err := client.ListAllServices(nil).All(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.True(t, services[0].IsRunning())
	assert.Equal(t, "/subscriptions/sub/providers/Microsoft.DataMigration/services", rec.requests[0].URL.Path)
}

func TestRaw(t *testing.T) {
	const taskID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataMigration/services/dms/projects/p1/tasks/t1"

	client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == taskID {
			w.Write([]byte(`{"name":"t1","properties":{"taskType":"ConnectToSource.SqlServer","state":"Succeeded"}}`))
			return
		}
		w.Write([]byte(`{"value":[{"name":"v1","properties":{"vaultType":"Migrate"}}]}`))
	})
	ctx := context.Background()

	value, err := client.Raw().Get(ctx, taskID)
	require.NoError(t, err)
	task, ok := value.(*dm.ProjectTask)
	require.True(t, ok)
	assert.IsType(t, &dm.ConnectToSourceSQLServerTaskProperties{}, task.Properties)
	assert.Equal(t, dm.APIVersion, rec.requests[0].URL.Query().Get("api-version"))

	items, err := client.Raw().List(vaultsPath, nil).All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	vault, ok := items[0].(*dr.VaultModel)
	require.True(t, ok)
	assert.Equal(t, dr.ReplicationVaultTypeMigrate, *vault.Properties.VaultType)
	assert.Equal(t, dr.APIVersion, rec.requests[1].URL.Query().Get("api-version"))

	_, err = client.Raw().Get(ctx, "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm1")
	assert.ErrorIs(t, err, verrors.ErrorUnknownResourceType)

	_, err = client.Raw().Get(ctx, "not an id")
	assert.Error(t, err)
	assert.Equal(t, 2, rec.count())
}

func TestKinds(t *testing.T) {
	names := []string{}
	for _, k := range armgo.Kinds() {
		names = append(names, k.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "plannedfailover")

	kind, found := armgo.KindByType("microsoft.datareplication/REPLICATIONVAULTS/protectedItems")
	require.True(t, found)
	assert.Equal(t, "protecteditem", kind.Name)

	_, found = armgo.KindByName("plannedfailover")
	assert.True(t, found)

	kind, err := armgo.ResolveCollectionKind(vaultsPath + "/v1/jobs")
	require.NoError(t, err)
	assert.Equal(t, "workflow", kind.Name)

	_, err = kind.Decode([]byte(`{"properties":{"state":"Succeeded"}}`))
	assert.ErrorIs(t, err, verrors.ErrorMissingField)

	_, found = armgo.KindByName("nope")
	assert.False(t, found)

	_, err = armgo.ResolveCollectionKind("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines")
	assert.ErrorIs(t, err, verrors.ErrorUnknownResourceType)
}

func TestServicesLifecycle(t *testing.T) {
	const servicesPath = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataMigration/services"

	var server *httptest.Server
	client, server, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Azure-AsyncOperation", server.URL+"/operations/"+r.Method)
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusAccepted)
	})
	ctx := context.Background()
	services := client.Services("rg")

	op, err := services.Stop(ctx, "dms")
	require.NoError(t, err)
	require.NotNil(t, op)
	assert.Equal(t, 3*time.Second, op.RetryAfter)
	assert.Equal(t, servicesPath+"/dms/stop", rec.requests[0].URL.Path)

	_, err = services.Start(ctx, "dms")
	require.NoError(t, err)
	assert.Equal(t, servicesPath+"/dms/start", rec.requests[1].URL.Path)

	op, err = services.Delete(ctx, "dms", nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/operations/DELETE", op.AsyncOperationURL)
	assert.Empty(t, rec.requests[2].URL.Query().Get("deleteRunningTasks"))
}

func TestWaitNonPositiveIntervals(t *testing.T) {
	client, server, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"Succeeded"}`))
	})
	op := &armgo.Operation{AsyncOperationURL: server.URL + "/operations/op5", RetryAfter: time.Millisecond}

	status, err := client.Operations().Wait(context.Background(), op, armgo.WaitOptions{Duration: -time.Second})
	require.NoError(t, err)
	assert.True(t, status.Succeeded())

	for _, interval := range []time.Duration{0, -time.Second} {
		client, err := armgo.NewClient("sub", staticCredential{},
			armgo.WithEndpoint(server.URL),
			armgo.WithHTTPClient(server.Client()),
			armgo.WithPollInterval(interval),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_, err = client.Operations().Wait(ctx, &armgo.Operation{AsyncOperationURL: server.URL + "/operations/op6"}, armgo.WaitOptions{})
		cancel()
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}

	assert.Equal(t, 1, rec.count())
}

func TestWaitHonoursRetryAfterOfPolls(t *testing.T) {
	var polls int
	_, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls == 1 {
			w.Header().Set("Retry-After", "1")
			w.Write([]byte(`{"status":"InProgress"}`))
			return
		}
		w.Write([]byte(`{"status":"Succeeded"}`))
	})

	slow, err := armgo.NewClient("sub", staticCredential{},
		armgo.WithEndpoint(server.URL),
		armgo.WithHTTPClient(server.Client()),
		armgo.WithPollInterval(time.Hour),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	op := &armgo.Operation{AsyncOperationURL: server.URL + "/operations/op7", RetryAfter: time.Millisecond}
	status, err := slow.Operations().Wait(ctx, op, armgo.WaitOptions{})
	require.NoError(t, err)
	assert.True(t, status.Succeeded())
	assert.Equal(t, 2, polls)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}
