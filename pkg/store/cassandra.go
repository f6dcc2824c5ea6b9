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
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// batchSize bounds statements per logged batch.
const batchSize = 100

// CassandraConfig encodes the settings for connecting to the database.
type CassandraConfig struct {
	Address           string
	ConnectionTimeout time.Duration
	CreateKeyspace    bool
	IgnorePeerAddr    bool
	InitialHostLookup bool
	KeyspaceName      string
	Password          string
	Port              int
	SslCAPath         string
	SslCertPath       string
	SslEnabled        bool
	SslHostValidation bool
	SslKeyPath        string
	Timeout           time.Duration
	Username          string
}

// DefaultCassandraConfig applies the Cassandra settings from the command line flags and
// environment variables.
func DefaultCassandraConfig() CassandraConfig {
	return CassandraConfig{
		Address:           CassandraAddress.Value(),
		ConnectionTimeout: CassandraConnectionTimeout.Value(),
		CreateKeyspace:    CassandraCreateKeyspace.Value(),
		IgnorePeerAddr:    CassandraIgnorePeerAddr.Value(),
		InitialHostLookup: CassandraInitialHostLookup.Value(),
		KeyspaceName:      CassandraKeyspaceName.Value(),
		Password:          CassandraPassword.Value(),
		Port:              CassandraPort.Value(),
		SslCAPath:         CassandraSslCAPath.Value(),
		SslCertPath:       CassandraSslCertPath.Value(),
		SslEnabled:        CassandraSslEnabled.Value(),
		SslHostValidation: CassandraSslHostValidation.Value(),
		SslKeyPath:        CassandraSslKeyPath.Value(),
		Timeout:           CassandraTimeout.Value(),
		Username:          CassandraUsername.Value(),
	}
}

// Cassandra keeps the session alive and holds the active configuration.
type Cassandra struct {
	config  CassandraConfig
	session *gocql.Session
}

// NewCassandra connects to the cluster and makes sure the observations table exists.
func NewCassandra(config CassandraConfig) (*Cassandra, error) {
	c := &Cassandra{config: config}
	if err := c.connect(); err != nil {
		return nil, err
	}
	return c, nil
}

func sslOptions(config CassandraConfig) *gocql.SslOptions {
	sslOptions := &gocql.SslOptions{
		EnableHostVerification: config.SslHostValidation,
	}

	if config.SslCAPath != "" {
		sslOptions.CaPath = config.SslCAPath
	}

	if config.SslCertPath != "" {
		sslOptions.CertPath = config.SslCertPath
	}

	if config.SslKeyPath != "" {
		sslOptions.KeyPath = config.SslKeyPath
	}

	return sslOptions
}

// clusterConfig prepares configuration of the Cassandra cluster.
func clusterConfig(config CassandraConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.Address)

	cluster.Consistency = gocql.LocalOne
	cluster.SerialConsistency = gocql.LocalSerial

	cluster.ProtoVersion = 4
	cluster.Port = config.Port
	cluster.ConnectTimeout = config.ConnectionTimeout
	cluster.Timeout = config.Timeout
	cluster.IgnorePeerAddr = config.IgnorePeerAddr
	cluster.DisableInitialHostLookup = !config.InitialHostLookup

	if config.Username != "" && config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}

	if config.SslEnabled {
		cluster.SslOpts = sslOptions(config)
	}

	return cluster
}

func createKeyspace(cluster *gocql.ClusterConfig, keyspace string) error {
	session, err := cluster.CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session for creating keyspace")
	}
	defer session.Close()

	query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", keyspace)

	return errors.Wrap(session.Query(query).Exec(), "cannot create keyspace")
}

// connect creates a session to the Cassandra cluster. It is called once per store.
func (c *Cassandra) connect() error {
	cluster := clusterConfig(c.config)

	if c.config.CreateKeyspace {
		if err := createKeyspace(cluster, c.config.KeyspaceName); err != nil {
			return err
		}
	}

	cluster.Keyspace = c.config.KeyspaceName
	session, err := cluster.CreateSession()
	if err != nil {
		return errors.Wrapf(err, "cannot connect to cassandra at %s:%d", c.config.Address, c.config.Port)
	}

	err = session.Query("CREATE TABLE IF NOT EXISTS observations (experiment_id text, seq int, tag text, process_count int, problem_size double, execution_time double, PRIMARY KEY ((experiment_id), seq)) WITH CLUSTERING ORDER BY (seq ASC);").Exec()
	if err != nil {
		session.Close()
		return errors.Wrap(err, "cannot create observations table")
	}

	c.session = session
	logrus.Debugf("Connected to cassandra keyspace %q at %s", c.config.KeyspaceName, c.config.Address)
	return nil
}

// Put implements Store. Observations are validated first and written in logged
// batches over the rows they replace; rows left over from a longer previous set
// are deleted last.
func (c *Cassandra) Put(experimentID string, observations observation.Observations) error {
	if err := observations.Validate(); err != nil {
		return err
	}

	for start := 0; start < len(observations); start += batchSize {
		end := start + batchSize
		if end > len(observations) {
			end = len(observations)
		}

		batch := c.session.NewBatch(gocql.LoggedBatch)
		for seq := start; seq < end; seq++ {
			o := observations[seq]
			batch.Query(`INSERT INTO observations (experiment_id, seq, tag, process_count, problem_size, execution_time) VALUES (?, ?, ?, ?, ?, ?)`,
				experimentID, seq, o.Tag, o.ProcessCount, o.ProblemSize, o.ExecutionTime)
		}
		if err := c.session.ExecuteBatch(batch); err != nil {
			return errors.Wrapf(err, "cannot store observations %d-%d of experiment %q", start, end-1, experimentID)
		}
	}

	err := c.session.Query(`DELETE FROM observations WHERE experiment_id = ? AND seq >= ?`, experimentID, len(observations)).Exec()
	if err != nil {
		return errors.Wrapf(err, "cannot delete stale observations of experiment %q", experimentID)
	}

	logrus.Debugf("Stored %d observations of experiment %q", len(observations), experimentID)
	return nil
}

// Get implements Store. Unknown experiment is an error.
func (c *Cassandra) Get(experimentID string) (observation.Observations, error) {
	observations := observation.Observations{}

	var o observation.Observation
	iter := c.session.Query(`SELECT tag, process_count, problem_size, execution_time FROM observations WHERE experiment_id = ?`, experimentID).Iter()
	for iter.Scan(&o.Tag, &o.ProcessCount, &o.ProblemSize, &o.ExecutionTime) {
		observations = append(observations, o)
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "cannot retrieve observations of experiment %q", experimentID)
	}

	if len(observations) == 0 {
		return nil, errors.Errorf("no observations for experiment %q", experimentID)
	}
	return observations, nil
}

// Clear implements Store.
func (c *Cassandra) Clear(experimentID string) error {
	err := c.session.Query(`DELETE FROM observations WHERE experiment_id = ?`, experimentID).Exec()
	return errors.Wrapf(err, "cannot clear experiment %q", experimentID)
}

// Experiments implements Store.
func (c *Cassandra) Experiments() ([]string, error) {
	experiments := []string{}

	var experimentID string
	iter := c.session.Query(`SELECT DISTINCT experiment_id FROM observations`).Iter()
	for iter.Scan(&experimentID) {
		experiments = append(experiments, experimentID)
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrap(err, "cannot list experiments")
	}
	return experiments, nil
}

// Close ends the session.
func (c *Cassandra) Close() {
	c.session.Close()
}
