// Copyright (c) 2017 Intel Corporation
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

package store

import (
	"time"

	"github.com/intelsdi-x/scaling/pkg/conf"
)

var (
	// CassandraAddress represents cassandra address flag.
	CassandraAddress = conf.NewStringFlag("cassandra_address", "Address of Cassandra DB endpoint.", "127.0.0.1")
	// CassandraUsername is the user name for Cassandra authentication.
	CassandraUsername = conf.NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster at 'cassandra_address'.", "")
	// CassandraPassword is the password for Cassandra authentication.
	CassandraPassword = conf.NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster at 'cassandra_address'.", "")
	// CassandraConnectionTimeout is the initial connection timeout.
	CassandraConnectionTimeout = conf.NewDurationFlag("cassandra_connection_timeout", "Initial connection timeout.", 5*time.Second)
	// CassandraTimeout is the query timeout.
	CassandraTimeout = conf.NewDurationFlag("cassandra_timeout", "Query timeout.", 5*time.Second)
	CassandraPort    = conf.NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint.", 9042)

	CassandraCreateKeyspace    = conf.NewBoolFlag("cassandra_create_keyspace", "Create keyspace when it does not exist.", true)
	CassandraKeyspaceName      = conf.NewStringFlag("cassandra_keyspace_name", "Keyspace keeping observations.", "scaling")
	CassandraIgnorePeerAddr    = conf.NewBoolFlag("cassandra_ignore_peer_addr", "Turn off cluster hosts tracking.", false)
	CassandraInitialHostLookup = conf.NewBoolFlag("cassandra_initial_host_lookup", "Lookup Cassandra cluster hosts before connecting.", false)

	CassandraSslEnabled        = conf.NewBoolFlag("cassandra_ssl", "Use SSL to connect to Cassandra.", false)
	CassandraSslHostValidation = conf.NewBoolFlag("cassandra_ssl_host_validation", "Validate certificate of the Cassandra host.", false)
	CassandraSslCAPath         = conf.NewStringFlag("cassandra_ssl_ca_path", "Path to CA certificate.", "")
	CassandraSslCertPath       = conf.NewStringFlag("cassandra_ssl_cert_path", "Path to client certificate.", "")
	CassandraSslKeyPath        = conf.NewStringFlag("cassandra_ssl_key_path", "Path to client key.", "")
)
